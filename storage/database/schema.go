package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Bootstrap DDL, applied at process start. Referential integrity and the
// uniqueness invariants (users.email, courses.course_code, one rating per
// (lecture_id, user_id), one assignment per triple) live here, in the
// storage layer.
//
// Admin accounts are seeded out of band:
//   INSERT INTO users (name, email, password, role) VALUES (..., 'admin');
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role ENUM('admin', 'student', 'lecturer', 'principal_lecturer', 'program_leader') NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS faculties (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INT AUTO_INCREMENT PRIMARY KEY,
		course_code VARCHAR(50) NOT NULL UNIQUE,
		course_name VARCHAR(255) NOT NULL,
		program_leader_id INT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (program_leader_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		class_name VARCHAR(255) NOT NULL,
		faculty_id INT,
		total_registered_students INT,
		venue VARCHAR(255),
		scheduled_time VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (faculty_id) REFERENCES faculties(id)
	)`,
	`CREATE TABLE IF NOT EXISTS lectures (
		id INT AUTO_INCREMENT PRIMARY KEY,
		class_id INT NOT NULL,
		course_id INT NOT NULL,
		lecturer_id INT NOT NULL,
		week_of_reporting VARCHAR(50),
		date_of_lecture DATE,
		actual_students_present INT,
		topic_taught TEXT,
		learning_outcomes TEXT,
		recommendations TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (class_id) REFERENCES classes(id),
		FOREIGN KEY (course_id) REFERENCES courses(id),
		FOREIGN KEY (lecturer_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS lecturer_assignments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		lecturer_id INT NOT NULL,
		class_id INT NOT NULL,
		course_id INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (lecturer_id) REFERENCES users(id),
		FOREIGN KEY (class_id) REFERENCES classes(id),
		FOREIGN KEY (course_id) REFERENCES courses(id),
		UNIQUE KEY unique_assignment (lecturer_id, class_id, course_id)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id INT AUTO_INCREMENT PRIMARY KEY,
		lecture_id INT NOT NULL,
		user_id INT NOT NULL,
		feedback_text TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (lecture_id) REFERENCES lectures(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		lecture_id INT NOT NULL,
		user_id INT NOT NULL,
		rating INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (lecture_id) REFERENCES lectures(id),
		FOREIGN KEY (user_id) REFERENCES users(id),
		UNIQUE KEY unique_rating (lecture_id, user_id)
	)`,
}

// EnsureSchema creates missing tables; existing tables are left untouched.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "applying schema")
		}
	}
	return nil
}
