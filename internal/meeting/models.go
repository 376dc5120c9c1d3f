package meeting

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting is a meeting suggestion as returned by the API. Date and location
// stay unset until the club settles on them.
type Meeting struct {
	ID             string     `json:"id"`
	Date           *time.Time `json:"date"`
	Location       *string    `json:"location"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Description    string     `json:"description"`
	PitchedBy      string     `json:"pitchedBy"`
	FirstSuggested time.Time  `json:"firstSuggested"`
	Supporters     []string   `json:"supporters"`
}

// CreateRequest carries the fields of a new meeting. The identifier and the
// firstSuggested timestamp are assigned by the repository on insertion.
type CreateRequest struct {
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Title       string     `json:"title" binding:"required"`
	Author      string     `json:"author" binding:"required"`
	Description string     `json:"description" binding:"required"`
	PitchedBy   string     `json:"pitchedBy" binding:"required"`
	Supporters  []string   `json:"supporters"`
}

// UpdateRequest is a partial update; absent fields are left untouched and
// firstSuggested is never updatable.
type UpdateRequest struct {
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Title       *string    `json:"title"`
	Author      *string    `json:"author"`
	Description *string    `json:"description"`
	PitchedBy   *string    `json:"pitchedBy"`
	Supporters  *[]string  `json:"supporters"`
}

// meetingDocument is a meeting as it is stored in MongoDB. Absent date and
// location are stored as explicit nulls.
type meetingDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Date           *time.Time         `bson:"date"`
	Location       *string            `bson:"location"`
	Title          string             `bson:"title"`
	Author         string             `bson:"author"`
	Description    string             `bson:"description"`
	PitchedBy      string             `bson:"pitchedBy"`
	FirstSuggested time.Time          `bson:"firstSuggested"`
	Supporters     []string           `bson:"supporters"`
}

// Entity maps the stored shape onto the API shape.
func (d meetingDocument) Entity() Meeting {
	var date *time.Time
	if d.Date != nil {
		utc := d.Date.UTC()
		date = &utc
	}
	return Meeting{
		ID:             d.ID.Hex(),
		Date:           date,
		Location:       d.Location,
		Title:          d.Title,
		Author:         d.Author,
		Description:    d.Description,
		PitchedBy:      d.PitchedBy,
		FirstSuggested: d.FirstSuggested.UTC(),
		Supporters:     d.Supporters,
	}
}

// meetingRecord is the insert shape: everything but the store-assigned _id.
type meetingRecord struct {
	Date           *time.Time `bson:"date"`
	Location       *string    `bson:"location"`
	Title          string     `bson:"title"`
	Author         string     `bson:"author"`
	Description    string     `bson:"description"`
	PitchedBy      string     `bson:"pitchedBy"`
	FirstSuggested time.Time  `bson:"firstSuggested"`
	Supporters     []string   `bson:"supporters"`
}
