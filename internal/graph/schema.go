package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the full SDL. The Update*Input shapes are declared but wired to
// no mutation field yet.
// TODO: wire updateUser/updateEducation/updateJobExperience mutations.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time
	scalar Date
	scalar JSON

	type Query {
		users: [User!]!
		user(userId: ID!): User
		educationRecords(userId: ID): [Education!]!
		jobExperiences(userId: ID): [JobExperience!]!
	}

	type Mutation {
		createUser(input: CreateUserInput!): CreateUserResponse!
		createEducation(input: CreateEducationInput!): CreateEducationResponse!
		createJobExperience(input: CreateJobExperienceInput!): CreateJobExperienceResponse!
	}

	type User {
		userId: ID!
		email: String!
		fullName: String
		createdAt: Time!
		updatedAt: Time!
		education: [Education!]!
		jobExperience: [JobExperience!]!
	}

	type Education {
		educationId: ID!
		userId: ID!
		institutionName: String!
		location: String
		dateStarted: Date!
		dateFinished: Date
		major: String
		minor: String
		gpa: Float
		details: JSON
		createdAt: Time!
		updatedAt: Time!
		user: User
	}

	type JobExperience {
		jobId: ID!
		userId: ID!
		companyName: String!
		jobTitle: String
		location: String
		dateStarted: Date!
		dateLeft: Date
		details: JSON
		createdAt: Time!
		updatedAt: Time!
		user: User
	}

	input CreateUserInput {
		email: String!
		fullName: String
		password: String!
	}

	input UpdateUserInput {
		email: String
		fullName: String
	}

	input CreateEducationInput {
		userId: ID!
		institutionName: String!
		location: String
		dateStarted: Date!
		dateFinished: Date
		major: String
		minor: String
		gpa: Float
		details: JSON
	}

	input UpdateEducationInput {
		institutionName: String
		location: String
		dateStarted: Date
		dateFinished: Date
		major: String
		minor: String
		gpa: Float
		details: JSON
	}

	input CreateJobExperienceInput {
		userId: ID!
		companyName: String!
		jobTitle: String
		location: String
		dateStarted: Date!
		dateLeft: Date
		details: JSON
	}

	input UpdateJobExperienceInput {
		companyName: String
		jobTitle: String
		location: String
		dateStarted: Date
		dateLeft: Date
		details: JSON
	}

	type CreateUserResponse {
		success: Boolean!
		message: String!
		user: User
	}

	type CreateEducationResponse {
		success: Boolean!
		message: String!
		education: Education
	}

	type CreateJobExperienceResponse {
		success: Boolean!
		message: String!
		jobExperience: JobExperience
	}
`

// MustParseSchema binds the SDL to a root resolver. Panics on a schema or
// resolver mismatch, which is a programming error caught at startup.
//
// Field resolution is serialized: every resolver in a request tree shares
// one pinned database connection, and a pgx connection cannot run queries
// concurrently.
func MustParseSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.MaxParallelism(1))
}
