package errors

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFromDBUniqueViolation(t *testing.T) {
	err := FromDB(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.Equal(t, CodeDuplicate, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
}

func TestFromDBForeignKeyViolation(t *testing.T) {
	err := FromDB(&pq.Error{Code: "23503", Constraint: "hemodialysis_records_patient_id_fkey"})
	assert.Equal(t, CodeForeignKey, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
}

func TestFromDBNoRows(t *testing.T) {
	err := FromDB(sql.ErrNoRows)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
}

func TestFromDBGenericFailure(t *testing.T) {
	err := FromDB(fmt.Errorf("connection reset"))
	assert.Equal(t, CodePersistence, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
	// The driver message is part of the client-visible contract.
	assert.Contains(t, err.Message, "connection reset")
}

func TestFromDBPassesThroughAppError(t *testing.T) {
	orig := Validation("fullName is required")
	err := FromDB(orig)
	assert.Same(t, orig, err)
}

func TestInvalidCredentialsIndistinguishable(t *testing.T) {
	a := InvalidCredentials()
	b := InvalidCredentials()
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, a.StatusCode(), b.StatusCode())
}

func TestUnauthorizedStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("missing token").StatusCode())
}
