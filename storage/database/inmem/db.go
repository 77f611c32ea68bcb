// Package inmemdb provides map-backed repositories mirroring the MySQL
// implementations' semantics (scoping, joins, constraint mapping, upsert)
// for tests and local hacking without a database.
package inmemdb

import (
	"sync"

	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/feedback"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/rating"
	"github.com/motebang/tlaleho/core/user"
)

type DB struct {
	sync.RWMutex
	pkCount int

	users       map[int]*user.User
	faculties   map[int]*class.Faculty
	courses     map[int]*course.Course
	classes     map[int]*class.Class
	lectures    map[int]*lecture.Lecture
	feedback    map[int]*feedback.Feedback
	ratings     map[int]*rating.Rating
	assignments map[int]*assignment.Assignment
}

func New() *DB {
	db := &DB{}
	db.reset()
	return db
}

func (db *DB) reset() {
	db.pkCount = 0
	db.users = make(map[int]*user.User)
	db.faculties = make(map[int]*class.Faculty)
	db.courses = make(map[int]*course.Course)
	db.classes = make(map[int]*class.Class)
	db.lectures = make(map[int]*lecture.Lecture)
	db.feedback = make(map[int]*feedback.Feedback)
	db.ratings = make(map[int]*rating.Rating)
	db.assignments = make(map[int]*assignment.Assignment)
}

// Reset drops all rows; tests call it between cases.
func (db *DB) Reset() {
	db.Lock()
	defer db.Unlock()
	db.reset()
}

// nextID emulates the server-generated, monotonic, never-reused ids.
// Callers must hold the write lock.
func (db *DB) nextID() int {
	db.pkCount++
	return db.pkCount
}

// AddFaculty seeds reference data (there is no create endpoint for it).
func (db *DB) AddFaculty(name string) class.Faculty {
	db.Lock()
	defer db.Unlock()
	fac := class.Faculty{ID: db.nextID(), Name: name}
	db.faculties[fac.ID] = &fac
	return fac
}
