package entity

// Variant is the visual kind of a notification.
type Variant string

const (
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"
)

// Notification is a fire-and-forget message shown to the user.
type Notification struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}
