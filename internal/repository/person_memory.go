package repository

import (
	"context"

	"github.com/abacqu/people-api/internal/dberr"
	"github.com/abacqu/people-api/internal/model"
	"github.com/hashicorp/go-memdb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	peopleTable = "people"
	idIndex     = "id"
)

// personRecord is what go-memdb stores. memdb indexes need a string
// field, so the ObjectID is kept alongside in hex.
type personRecord struct {
	Key    string
	Person model.Person
}

func peopleSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			peopleTable: {
				Name: peopleTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
}

// MemoryPersonRepository keeps People in process with go-memdb.
//
// Records are never mutated in place: updates insert a modified copy, so
// readers in other transactions keep a consistent snapshot.
type MemoryPersonRepository struct {
	db *memdb.MemDB
}

func NewMemoryPersonRepository() (*MemoryPersonRepository, error) {
	db, err := memdb.NewMemDB(peopleSchema())
	if err != nil {
		return nil, errors.Wrap(err, "create in-memory people store")
	}
	return &MemoryPersonRepository{db: db}, nil
}

// List returns People ordered by id, which for ObjectIDs is creation order.
func (r *MemoryPersonRepository) List(_ context.Context) ([]model.Person, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(peopleTable, idIndex)
	if err != nil {
		return nil, dberr.Wrap(dberr.OpList, personEntity, err)
	}

	people := []model.Person{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		people = append(people, obj.(*personRecord).Person)
	}

	return people, nil
}

func (r *MemoryPersonRepository) Create(_ context.Context, fields model.PersonFields) (*model.Person, error) {
	person := model.NewPerson(fields, model.Now())

	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(peopleTable, &personRecord{Key: person.ID.Hex(), Person: person}); err != nil {
		return nil, dberr.Wrap(dberr.OpCreate, personEntity, err)
	}
	txn.Commit()

	return &person, nil
}

func (r *MemoryPersonRepository) Update(_ context.Context, id string, fields model.PersonFields) (*model.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dberr.New(dberr.OpUpdate, personEntity, dberr.InvalidID, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(peopleTable, idIndex, oid.Hex())
	if err != nil {
		return nil, dberr.Wrap(dberr.OpUpdate, personEntity, err)
	}
	if obj == nil {
		return nil, nil
	}

	person := obj.(*personRecord).Person
	person.Apply(fields, model.Now())

	if err := txn.Insert(peopleTable, &personRecord{Key: oid.Hex(), Person: person}); err != nil {
		return nil, dberr.Wrap(dberr.OpUpdate, personEntity, err)
	}
	txn.Commit()

	return &person, nil
}

func (r *MemoryPersonRepository) Delete(_ context.Context, id string) (*model.Person, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dberr.New(dberr.OpDelete, personEntity, dberr.InvalidID, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(peopleTable, idIndex, oid.Hex())
	if err != nil {
		return nil, dberr.Wrap(dberr.OpDelete, personEntity, err)
	}
	if obj == nil {
		return nil, nil
	}

	if err := txn.Delete(peopleTable, obj); err != nil {
		return nil, dberr.Wrap(dberr.OpDelete, personEntity, err)
	}
	txn.Commit()

	person := obj.(*personRecord).Person
	return &person, nil
}
