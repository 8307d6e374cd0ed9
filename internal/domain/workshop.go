package domain

// Workshop is an independently-authored, hand-maintained entry; it is not
// derived from spreadsheet extraction and the renderer treats it as opaque
// input data.
type Workshop struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	SpeakerName      string `json:"speakerName"`
	SpeakerImage     string `json:"speakerImage"`
	Capacity         int    `json:"capacity"`
	RegistrationLink string `json:"registrationLink"`
}
