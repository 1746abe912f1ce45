package entities

import "github.com/spf13/cast"

// NormalizeAuthor coerces a stored author body into its canonical shape:
// name and email fields as strings, the placeholder image when none is
// stored, and favorite collapsed to a plain bool. Idempotent.
func NormalizeAuthor(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	out["first_name"] = cast.ToString(fields["first_name"])
	out["last_name"] = cast.ToString(fields["last_name"])
	out["email"] = cast.ToString(fields["email"])
	out["image"] = imageOrDefault(fields["image"], DefaultAuthorImage)
	out["favorite"] = cast.ToBool(fields["favorite"])
	out["uid"] = cast.ToString(fields["uid"])
	return out
}

// NormalizeBook coerces a stored book body into its canonical shape. The
// stored textual price becomes a non-negative float64; a missing or
// unparseable value normalizes to 0. Idempotent.
func NormalizeBook(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	out["title"] = cast.ToString(fields["title"])
	out["description"] = cast.ToString(fields["description"])
	out["author_id"] = cast.ToString(fields["author_id"])
	out["image"] = imageOrDefault(fields["image"], DefaultBookImage)
	out["sale"] = cast.ToBool(fields["sale"])
	out["price"] = normalizePrice(fields["price"])
	out["uid"] = cast.ToString(fields["uid"])
	return out
}

// AuthorFromDocument normalizes a stored body and decodes it into an
// Author, injecting the document id as the surrogate key.
func AuthorFromDocument(id string, fields map[string]any) Author {
	f := NormalizeAuthor(fields)
	return Author{
		FirebaseKey: id,
		FirstName:   f["first_name"].(string),
		LastName:    f["last_name"].(string),
		Email:       f["email"].(string),
		Image:       f["image"].(string),
		Favorite:    f["favorite"].(bool),
		UID:         f["uid"].(string),
		CreatedAt:   cast.ToString(f["createdAt"]),
		UpdatedAt:   cast.ToString(f["updatedAt"]),
	}
}

// BookFromDocument normalizes a stored body and decodes it into a Book,
// injecting the document id as the surrogate key.
func BookFromDocument(id string, fields map[string]any) Book {
	f := NormalizeBook(fields)
	return Book{
		FirebaseKey: id,
		Title:       f["title"].(string),
		Description: f["description"].(string),
		Image:       f["image"].(string),
		AuthorID:    f["author_id"].(string),
		Price:       f["price"].(float64),
		Sale:        f["sale"].(bool),
		UID:         f["uid"].(string),
		CreatedAt:   cast.ToString(f["createdAt"]),
		UpdatedAt:   cast.ToString(f["updatedAt"]),
	}
}

func imageOrDefault(value any, fallback string) string {
	if image := cast.ToString(value); image != "" {
		return image
	}
	return fallback
}

func normalizePrice(value any) float64 {
	price, err := cast.ToFloat64E(value)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
