package repository

import (
	"context"
	"time"

	"github.com/abacqu/people-api/internal/dberr"
	"github.com/abacqu/people-api/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPersonRepository stores People in a MongoDB collection.
type MongoPersonRepository struct {
	collection *mongo.Collection
}

func NewMongoPersonRepository(collection *mongo.Collection) *MongoPersonRepository {
	return &MongoPersonRepository{collection: collection}
}

// List returns every document with no filter, in natural order.
func (r *MongoPersonRepository) List(ctx context.Context) ([]model.Person, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, dberr.Wrap(dberr.OpList, personEntity, errors.Wrap(err, "find people"))
	}

	// Non-nil so an empty collection encodes as [] rather than null.
	people := []model.Person{}
	if err := cursor.All(ctx, &people); err != nil {
		return nil, dberr.Wrap(dberr.OpList, personEntity, errors.Wrap(err, "decode people"))
	}

	return people, nil
}

// Create inserts a new document with a generated id and timestamps.
func (r *MongoPersonRepository) Create(ctx context.Context, fields model.PersonFields) (*model.Person, error) {
	person := model.NewPerson(fields, model.Now())

	if _, err := r.collection.InsertOne(ctx, person); err != nil {
		return nil, dberr.Wrap(dberr.OpCreate, personEntity, errors.Wrap(err, "insert person"))
	}

	return &person, nil
}

// Update $sets the provided fields plus updatedAt, $unsets the ones sent as
// null and returns the document as it is after the update.
func (r *MongoPersonRepository) Update(ctx context.Context, id string, fields model.PersonFields) (*model.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dberr.New(dberr.OpUpdate, personEntity, dberr.InvalidID, err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var person model.Person
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, updateDocument(fields, model.Now()), opts).Decode(&person)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(dberr.OpUpdate, personEntity, errors.Wrapf(err, "update person %s", id))
	}

	return &person, nil
}

// Delete removes the document and returns it as it was.
func (r *MongoPersonRepository) Delete(ctx context.Context, id string) (*model.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dberr.New(dberr.OpDelete, personEntity, dberr.InvalidID, err)
	}

	var person model.Person
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&person)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(dberr.OpDelete, personEntity, errors.Wrapf(err, "delete person %s", id))
	}

	return &person, nil
}

func updateDocument(fields model.PersonFields, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Image != nil {
		set["image"] = *fields.Image
	}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}

	update := bson.M{"$set": set}
	if len(fields.Unset) > 0 {
		unset := bson.M{}
		for _, key := range fields.Unset {
			unset[key] = ""
		}
		update["$unset"] = unset
	}

	return update
}
