package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Client for MongoDB
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore creates a new MongoStore backed by the named database
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

// Add creates a new document with an auto-generated ID in MongoDB
func (s *MongoStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	objID := primitive.NewObjectID()
	doc := bson.M{"_id": objID}
	for k, v := range data {
		// MongoDB has no insert-time server clock sentinel; the driver clock
		// stands in for it.
		if _, ok := v.(ServerTimestampValue); ok {
			doc[k] = time.Now().UTC()
			continue
		}
		doc[k] = v
	}
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return objID.Hex(), nil
}

// Set creates or replaces a document with a caller-chosen ID in MongoDB
func (s *MongoStore) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	doc := bson.M{}
	for k, v := range data {
		if _, ok := v.(ServerTimestampValue); ok {
			doc[k] = time.Now().UTC()
			continue
		}
		doc[k] = v
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": mongoID(id)}, doc, opts)
	return err
}

// Get retrieves a document by ID from MongoDB
func (s *MongoStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": mongoID(id)}).Decode(&raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mongoDocument(id, raw), nil
}

// List retrieves all documents in a collection ordered by the given field
func (s *MongoStore) List(ctx context.Context, collection, orderBy string, desc bool) ([]*Document, error) {
	dir := 1
	if desc {
		dir = -1
	}
	findOptions := options.Find().SetSort(bson.D{{Key: orderBy, Value: dir}})
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return s.collect(ctx, cursor)
}

// Query retrieves documents whose field equals value
func (s *MongoStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return s.collect(ctx, cursor)
}

func (s *MongoStore) collect(ctx context.Context, cursor *mongo.Cursor) ([]*Document, error) {
	var docs []*Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		id := ""
		switch tv := raw["_id"].(type) {
		case primitive.ObjectID:
			id = tv.Hex()
		case string:
			id = tv
		}
		docs = append(docs, mongoDocument(id, raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Update applies field updates to an existing document in MongoDB
func (s *MongoStore) Update(ctx context.Context, collection, id string, updates []Update) error {
	set := bson.M{}
	addToSet := bson.M{}
	pull := bson.M{}
	currentDate := bson.M{}
	for _, u := range updates {
		switch tv := u.Value.(type) {
		case ServerTimestampValue:
			currentDate[u.Path] = true
		case ArrayUnionValue:
			addToSet[u.Path] = bson.M{"$each": tv.Elems}
		case ArrayRemoveValue:
			pull[u.Path] = bson.M{"$in": tv.Elems}
		default:
			set[u.Path] = u.Value
		}
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}
	if len(pull) > 0 {
		update["$pull"] = pull
	}
	if len(currentDate) > 0 {
		update["$currentDate"] = currentDate
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": mongoID(id)}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document from MongoDB
func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": mongoID(id)})
	return err
}

// mongoID maps a document identifier to its _id form. Store-assigned IDs are
// hex ObjectIDs; caller-chosen IDs (auth provider UIDs) stay plain strings.
func mongoID(id string) interface{} {
	if objID, err := primitive.ObjectIDFromHex(id); err == nil {
		return objID
	}
	return id
}

// Close disconnects the underlying MongoDB client
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// mongoDocument builds a Document from a decoded bson.M, dropping _id and
// normalizing driver types
func mongoDocument(id string, raw bson.M) *Document {
	data := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		data[k] = normalizeBSON(v)
	}
	return &Document{ID: id, Data: data}
}

// normalizeBSON converts bson driver types into the plain map/slice/time
// shapes the repositories decode
func normalizeBSON(v interface{}) interface{} {
	switch tv := v.(type) {
	case primitive.M:
		out := make(map[string]interface{}, len(tv))
		for k, e := range tv {
			out[k] = normalizeBSON(e)
		}
		return out
	case primitive.A:
		out := make([]interface{}, len(tv))
		for i, e := range tv {
			out[i] = normalizeBSON(e)
		}
		return out
	case primitive.DateTime:
		return tv.Time().UTC()
	default:
		return v
	}
}
