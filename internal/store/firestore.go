package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Client for Cloud Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new FirestoreStore
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Add creates a new document with an auto-generated ID in Firestore
func (s *FirestoreStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, translateData(data))
	if err != nil {
		return "", translateFirestoreErr(err)
	}
	return ref.ID, nil
}

// Set creates or replaces a document with a caller-chosen ID in Firestore
func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, translateData(data)); err != nil {
		return translateFirestoreErr(err)
	}
	return nil
}

// Get retrieves a document by ID from Firestore
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateFirestoreErr(err)
	}
	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

// List retrieves all documents in a collection ordered by the given field
func (s *FirestoreStore) List(ctx context.Context, collection, orderBy string, desc bool) ([]*Document, error) {
	dir := firestore.Asc
	if desc {
		dir = firestore.Desc
	}
	iter := s.client.Collection(collection).OrderBy(orderBy, dir).Documents(ctx)
	defer iter.Stop()

	var docs []*Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateFirestoreErr(err)
		}
		docs = append(docs, &Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Query retrieves documents whose field equals value
func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error) {
	iter := s.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	var docs []*Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateFirestoreErr(err)
		}
		docs = append(docs, &Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Update applies field updates to an existing document in Firestore
func (s *FirestoreStore) Update(ctx context.Context, collection, id string, updates []Update) error {
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for _, u := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: u.Path, Value: translateValue(u.Value)})
	}
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, fsUpdates); err != nil {
		return translateFirestoreErr(err)
	}
	return nil
}

// Delete removes a document from Firestore
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are idempotent; deleting an absent doc succeeds.
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return translateFirestoreErr(err)
	}
	return nil
}

// Close closes the underlying Firestore client
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// translateData maps sentinel values inside a document to Firestore transforms
func translateData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = translateValue(v)
	}
	return out
}

// translateValue maps a sentinel value to its Firestore transform
func translateValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case ServerTimestampValue:
		return firestore.ServerTimestamp
	case ArrayUnionValue:
		return firestore.ArrayUnion(tv.Elems...)
	case ArrayRemoveValue:
		return firestore.ArrayRemove(tv.Elems...)
	default:
		return v
	}
}

// translateFirestoreErr maps gRPC status codes to store errors
func translateFirestoreErr(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		return err
	}
}
