package tools

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sets a document in a Firestore collection
func SetFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string, data map[string]interface{}) error {
	docRef := client.Collection(collection).Doc(documentName)

	_, err := docRef.Set(c, data)

	return err
}

// Gets a document from a Firestore collection, nil if it does not exist
func GetFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string) (map[string]interface{}, error) {
	docRef := client.Collection(collection).Doc(documentName)

	doc, err := docRef.Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	return doc.Data(), nil
}

func DeleteFirestoreDocument(c context.Context, client *firestore.Client, collection, documentName string) error {
	docRef := client.Collection(collection).Doc(documentName)

	if _, err := docRef.Delete(c); err != nil {
		return err
	}

	return nil
}
