package models

// Event is a club event shown on the public site. Participant counters are
// plain fields maintained by the caller; nothing enforces current <= max.
type Event struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Date                string `json:"date"`
	Description         string `json:"description"`
	ImageURL            string `json:"imageUrl"`
	RegistrationFormURL string `json:"registrationFormUrl"`
	PhotoGalleryURL     string `json:"photoGalleryUrl"`
	Category            string `json:"category"`
	Location            string `json:"location"`
	MaxParticipants     int    `json:"maxParticipants"`
	CurrentParticipants int    `json:"currentParticipants"`
}
