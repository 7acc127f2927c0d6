// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package catalog

import "github.com/tomtom215/lectern/internal/models"

// SeedTenants returns the four built-in institutions.
func SeedTenants() []models.Tenant {
	return []models.Tenant{
		{ID: "stanford", Name: "Stanford University", Students: 2156, Courses: 12, Instructors: 24},
		{ID: "mit", Name: "Massachusetts Institute of Technology", Students: 3200, Courses: 15, Instructors: 32},
		{ID: "oxford", Name: "University of Oxford", Students: 1890, Courses: 10, Instructors: 18},
		{ID: "berkeley", Name: "UC Berkeley", Students: 2800, Courses: 14, Instructors: 28},
	}
}

// SeedCourses returns three starter courses per built-in tenant.
func SeedCourses() map[string][]models.Course {
	return map[string][]models.Course{
		"stanford": {
			{ID: "1", Title: "Introduction to Computer Science", Instructor: "Prof. David Williams", Students: 1250, Duration: "12 weeks", Description: "Learn the fundamentals of computer science"},
			{ID: "2", Title: "Advanced Algorithms", Instructor: "Prof. Sarah Chen", Students: 890, Duration: "10 weeks", Description: "Deep dive into algorithm design and analysis"},
			{ID: "3", Title: "Database Systems", Instructor: "Prof. Michael Brown", Students: 650, Duration: "8 weeks", Description: "Comprehensive database design and management"},
		},
		"mit": {
			{ID: "1", Title: "MIT Introduction to Machine Learning", Instructor: "Dr. John Smith", Students: 2100, Duration: "14 weeks", Description: "Introduction to ML concepts and applications"},
			{ID: "2", Title: "Robotics Fundamentals", Instructor: "Dr. Emily Johnson", Students: 1560, Duration: "12 weeks", Description: "Build and program robots"},
			{ID: "3", Title: "Quantum Computing", Instructor: "Dr. Robert Chen", Students: 980, Duration: "10 weeks", Description: "Quantum algorithms and computing principles"},
		},
		"oxford": {
			{ID: "1", Title: "Classical Literature", Instructor: "Prof. James Wilson", Students: 980, Duration: "8 weeks", Description: "Study of classical literary works"},
			{ID: "2", Title: "Modern Philosophy", Instructor: "Dr. Mary Brown", Students: 750, Duration: "10 weeks", Description: "Contemporary philosophical thought"},
			{ID: "3", Title: "Medieval History", Instructor: "Prof. Elizabeth Taylor", Students: 620, Duration: "12 weeks", Description: "European history from 500-1500 AD"},
		},
		"berkeley": {
			{ID: "1", Title: "Data Science Fundamentals", Instructor: "Prof. Robert Lee", Students: 3200, Duration: "12 weeks", Description: "Data analysis and visualization techniques"},
			{ID: "2", Title: "Cloud Computing", Instructor: "Dr. Lisa Anderson", Students: 1890, Duration: "10 weeks", Description: "AWS, Azure, and GCP cloud services"},
			{ID: "3", Title: "Software Engineering", Instructor: "Prof. David Kim", Students: 1450, Duration: "14 weeks", Description: "Best practices in software development"},
		},
	}
}
