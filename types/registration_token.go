package types

// RegistrationToken is the FCM token stored for one user.
type RegistrationToken struct {
	UserId    string `json:"userId" firestore:"userId"`
	Token     string `json:"token" firestore:"token"`
	Platform  string `json:"platform" firestore:"platform"`
	UpdatedAt string `json:"updatedAt" firestore:"updatedAt"`
}
