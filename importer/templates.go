package importer

import "github.com/pkg/errors"

// Import types accepted by the admin endpoint.
const (
	TypeProjects = "projects"
	TypeResearch = "research"
	TypePeople   = "people"
	TypeTopics   = "topics"
)

// ErrUnknownType is returned for an import type outside the accepted set.
var ErrUnknownType = errors.New("unknown import type")

var templates = map[string]string{
	TypeProjects: `Project_Name,Description,Keywords,Priority,Project_Lead
Project Phoenix API Architecture,New microservices architecture design,distributed systems,api,microservices,4,John Doe
Mobile Performance Optimization,Improve app performance by 40%,performance,mobile,optimization,3,Jane Smith
Database Migration Project,Migrate from MySQL to PostgreSQL,database,migration,sql,5,Mike Johnson`,
	TypeResearch: `Research_Link,Title,Summary,Tags,Priority
https://arxiv.org/abs/1234,New Database Indexing Techniques,Breakthrough paper on novel indexing approach,database,indexing,performance,3
https://example.com/paper2,ML Model Optimization,New techniques for reducing model size,machine learning,optimization,2
https://example.com/paper3,Security Best Practices 2024,Updated security guidelines for modern apps,security,best practices,4`,
	TypePeople: `Name,Email,Title,Team,Expertise_Keywords,Interest_Keywords,Preference,Bio
John Doe,john.doe@company.com,Senior Engineer,Platform,distributed systems,api,microservices,database,performance,deep_focus,Expert in distributed systems and API design
Jane Smith,jane.smith@company.com,Mobile Lead,Mobile,mobile,performance,optimization,ui,collaboration,Mobile performance specialist
Mike Johnson,mike.johnson@company.com,Data Engineer,Data,database,sql,migration,analytics,ad_hoc_advisory,Database migration expert`,
	TypeTopics: `name,description,category,isActive
distributed systems,Scalable system design and architecture,technology,true
performance optimization,Application and system performance tuning,technology,true
API design,REST and GraphQL API best practices,technology,true
machine learning,ML model development and deployment,technology,true
security,Application security and best practices,technology,true
Project Phoenix,New microservices initiative,project,true
Mobile App Redesign,UI/UX overhaul for mobile app,project,true
Database Migration,MySQL to PostgreSQL migration,project,true`,
}

// Template returns the downloadable CSV sample for an import type.
func Template(importType string) (string, error) {
	template, ok := templates[importType]
	if !ok {
		return "", ErrUnknownType
	}
	return template, nil
}
