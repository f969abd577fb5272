package models

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type SexualPreference string

const (
	PreferenceMale   SexualPreference = "Male"
	PreferenceFemale SexualPreference = "Female"
	PreferenceBoth   SexualPreference = "Both"
)

// Profile is the full profile document behind an account.
type Profile struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Gender           Gender           `json:"gender,omitempty"`
	SexualPreference SexualPreference `json:"sexualPreference"`
	Biography        string           `json:"biography,omitempty"`
	Interests        []string         `json:"interests"`
	Images           []string         `json:"images"`
	Age              int              `json:"age,omitempty"`
	Location         string           `json:"location,omitempty"`
	FameRating       int              `json:"fameRating,omitempty"`
}

// ProfileFormValues is a partial profile update; nil fields are left
// untouched by the server.
type ProfileFormValues struct {
	FirstName        *string           `json:"firstName,omitempty"`
	LastName         *string           `json:"lastName,omitempty"`
	Gender           *Gender           `json:"gender,omitempty"`
	SexualPreference *SexualPreference `json:"sexualPreference,omitempty"`
	Biography        *string           `json:"biography,omitempty"`
	Interests        *[]string         `json:"interests,omitempty"`
	Images           *[]string         `json:"images,omitempty"`
}

// PublicProfile is the reduced card shown in browse listings.
type PublicProfile struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	Age        int      `json:"age"`
	Location   string   `json:"location"`
	FameRating int      `json:"fameRating"`
	Interests  []string `json:"interests"`
	Image      string   `json:"image,omitempty"`
}

// ChatMessage is one message in a conversation between two matched
// profiles.
type ChatMessage struct {
	ID            string `json:"id"`
	SourceProfile string `json:"sourceProfile"`
	TargetProfile string `json:"targetProfile"`
	Text          string `json:"text"`
	Timestamp     int64  `json:"timestamp"`
}

type NotificationType string

const (
	NotificationLike     NotificationType = "like"
	NotificationVisit    NotificationType = "visit"
	NotificationMessage  NotificationType = "message"
	NotificationLikeBack NotificationType = "likeBack"
)

// Notification is an activity event targeting the current profile.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"notificationType"`
	Timestamp     int64            `json:"timestamp"`
	SourceProfile string           `json:"sourceProfile"`
	Read          bool             `json:"read"`
}
