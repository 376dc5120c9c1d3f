package book

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a book suggestion as returned by the API.
type Book struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Description    string    `json:"description"`
	PageCount      int       `json:"pageCount"`
	PitchBy        string    `json:"pitchBy"`
	FirstSuggested time.Time `json:"firstSuggested"`
	Supporters     []string  `json:"supporters"`
}

// CreateRequest carries the fields of a new book. The identifier and the
// firstSuggested timestamp are assigned by the repository on insertion.
type CreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Author      string   `json:"author" binding:"required"`
	Description string   `json:"description" binding:"required"`
	PageCount   int      `json:"pageCount"`
	PitchBy     string   `json:"pitchBy" binding:"required"`
	Supporters  []string `json:"supporters"`
}

// UpdateRequest is a partial update: a present field replaces the stored
// value, an absent field is left untouched. firstSuggested is deliberately
// missing; it is set once at creation and never updatable.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Author      *string   `json:"author"`
	Description *string   `json:"description"`
	PageCount   *int      `json:"pageCount"`
	PitchBy     *string   `json:"pitchBy"`
	Supporters  *[]string `json:"supporters"`
}

// VoteRequest names the supporter to add to a book's supporter set.
type VoteRequest struct {
	Supporter string `json:"supporter" binding:"required"`
}

// bookDocument is a book as it is stored in MongoDB. supporterCount is
// derived from the supporter set; it exists for the sorted-listing index and
// never leaves the storage layer.
type bookDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Title          string             `bson:"title"`
	Author         string             `bson:"author"`
	Description    string             `bson:"description"`
	PageCount      int                `bson:"pageCount"`
	PitchBy        string             `bson:"pitchBy"`
	FirstSuggested time.Time          `bson:"firstSuggested"`
	Supporters     []string           `bson:"supporters"`
	SupporterCount int                `bson:"supporterCount"`
}

// Entity maps the stored shape onto the API shape.
func (d bookDocument) Entity() Book {
	return Book{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Author:         d.Author,
		Description:    d.Description,
		PageCount:      d.PageCount,
		PitchBy:        d.PitchBy,
		FirstSuggested: d.FirstSuggested.UTC(),
		Supporters:     d.Supporters,
	}
}

// bookRecord is the insert shape: everything but the store-assigned _id.
type bookRecord struct {
	Title          string    `bson:"title"`
	Author         string    `bson:"author"`
	Description    string    `bson:"description"`
	PageCount      int       `bson:"pageCount"`
	PitchBy        string    `bson:"pitchBy"`
	FirstSuggested time.Time `bson:"firstSuggested"`
	Supporters     []string  `bson:"supporters"`
	SupporterCount int       `bson:"supporterCount"`
}
