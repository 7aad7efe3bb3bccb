package tools

import (
	"context"
	"fmt"
	"time"

	"ndis_connect/types"

	"cloud.google.com/go/firestore"
)

// FirestoreTokenStore keeps one FCM registration token per user in the
// messagingTokens collection, keyed by the user's UID.
type FirestoreTokenStore struct {
	Client *firestore.Client
	now    func() time.Time
}

func NewFirestoreTokenStore(client *firestore.Client) *FirestoreTokenStore {
	return &FirestoreTokenStore{Client: client, now: time.Now}
}

func (s *FirestoreTokenStore) SaveRegistrationToken(ctx context.Context, token types.RegistrationToken) error {
	if token.UserId == "" {
		return fmt.Errorf("registration token has no user id")
	}

	return SetFirestoreDocument(ctx, s.Client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, token.UserId, map[string]interface{}{
		"userId":    token.UserId,
		"token":     token.Token,
		"platform":  token.Platform,
		"updatedAt": s.now().UTC().Format(time.RFC3339),
	})
}

// RegistrationToken returns the user's token, or "" if none is stored.
func (s *FirestoreTokenStore) RegistrationToken(ctx context.Context, userID string) (string, error) {
	doc, err := GetFirestoreDocument(ctx, s.Client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, userID)
	if err != nil {
		return "", fmt.Errorf("error reading registration token: %w", err)
	}

	token, _ := doc["token"].(string)
	return token, nil
}

func (s *FirestoreTokenStore) DeleteRegistrationToken(ctx context.Context, userID string) error {
	return DeleteFirestoreDocument(ctx, s.Client, types.FIREBASE_MESSAGING_TOKEN_COLLECTION, userID)
}
