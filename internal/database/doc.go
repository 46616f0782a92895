// Package database implements the domain repositories on PostgreSQL.
//
// Vote mutations are single conditional UPDATE statements: the membership
// precondition lives in the WHERE clause and the counter adjustment plus the
// array change in the SET list, so a vote can never be half-applied and two
// racing requests from the same user cannot both succeed.
package database
