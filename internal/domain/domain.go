package domain

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	CollectionUsers    = "users"
	CollectionCourses  = "courses"
	CollectionFiles    = "files"
	CollectionProfile  = "profile"
	CollectionResearch = "research"
)

// Account is the single admin login. Password holds the bcrypt digest.
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}

type Course struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code       string             `bson:"code" json:"code"`
	Title      string             `bson:"title" json:"title"`
	Image      string             `bson:"image" json:"image"`
	University string             `bson:"university" json:"university"`
	Link       string             `bson:"link" json:"link"`
	Details    bson.M             `bson:"details" json:"details"`
}

// FileRecord describes an uploaded document. Course is a free-text tag and is
// not checked against the courses collection.
type FileRecord struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title  string             `bson:"title,omitempty" json:"title,omitempty"`
	Type   string             `bson:"type,omitempty" json:"type,omitempty"`
	Course string             `bson:"course,omitempty" json:"course,omitempty"`
	Link   string             `bson:"link,omitempty" json:"link,omitempty"`
}

// FileQueryFields are the FileRecord fields GET /files may filter on.
var FileQueryFields = []string{"title", "type", "course", "link"}

// Profile and ResearchItem are open documents; the site owner decides their
// shape from the admin UI.
type Profile = bson.M
type ResearchItem = bson.M
