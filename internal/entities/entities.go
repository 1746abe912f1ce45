package entities

import "strconv"

// Placeholder image paths served by the web client. They are substituted
// whenever a record carries no image of its own.
const (
	DefaultAuthorImage = "/author-avatar.png"
	DefaultBookImage   = "/bookcase-logo.png"
)

// Result type discriminators attached to federated search matches.
const (
	TypeAuthor = "author"
	TypeBook   = "book"
)

// Author is the canonical author shape returned to API callers.
// FirebaseKey is the store-assigned document id; it is never part of the
// stored body.
type Author struct {
	FirebaseKey string `json:"firebaseKey"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Image       string `json:"image"`
	Favorite    bool   `json:"favorite"`
	UID         string `json:"uid"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Book is the canonical book shape returned to API callers. Price is
// always numeric here even though the store keeps it as text.
// AuthorID may dangle: the store enforces no referential integrity.
type Book struct {
	FirebaseKey string  `json:"firebaseKey"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	AuthorID    string  `json:"author_id"`
	Price       float64 `json:"price"`
	Sale        bool    `json:"sale"`
	UID         string  `json:"uid"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
	Type        string  `json:"type,omitempty"`
}

// SearchResults is the envelope returned by federated search.
type SearchResults struct {
	Books   []Book   `json:"books"`
	Authors []Author `json:"authors"`
	Query   string   `json:"query"`
}

// NewAuthor carries the fields accepted when creating an author.
type NewAuthor struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Favorite  bool   `json:"favorite"`
	UID       string `json:"uid"`
}

// NewBook carries the fields accepted when creating a book.
type NewBook struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	AuthorID    string  `json:"author_id"`
	Price       float64 `json:"price"`
	Sale        bool    `json:"sale"`
	UID         string  `json:"uid"`
}

// AuthorPatch is the set of author fields that may be updated. Nil fields
// are left untouched by the store merge; keys outside this set are
// silently discarded at the JSON boundary.
type AuthorPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Image     *string `json:"image"`
	Favorite  *bool   `json:"favorite"`
}

// Fields returns the merge body for the patch, keyed by stored field names.
func (p AuthorPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Favorite != nil {
		fields["favorite"] = *p.Favorite
	}
	return fields
}

// BookPatch is the set of book fields that may be updated.
type BookPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	AuthorID    *string  `json:"author_id"`
	Price       *float64 `json:"price"`
	Sale        *bool    `json:"sale"`
}

// Fields returns the merge body for the patch. Price is rendered as text,
// matching the stored representation.
func (p BookPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.AuthorID != nil {
		fields["author_id"] = *p.AuthorID
	}
	if p.Price != nil {
		fields["price"] = FormatPrice(*p.Price)
	}
	if p.Sale != nil {
		fields["sale"] = *p.Sale
	}
	return fields
}

// FormatPrice renders a price for storage. The store keeps prices as
// text; normalization turns them back into numbers on read.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
