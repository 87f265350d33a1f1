package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeletePolicyCoversEveryTable(t *testing.T) {
	soft := []string{"batches", "courses", "skills", "students", "employees", "visitors"}
	hard := []string{"fees", "fee_installments", "timetable_slots", "attendances", "batch_mappings", "feedbacks"}

	for _, tbl := range soft {
		assert.Equal(t, SoftDeletable, DeletePolicyFor[tbl], tbl)
	}
	for _, tbl := range hard {
		assert.Equal(t, HardDeletable, DeletePolicyFor[tbl], tbl)
	}
	assert.Len(t, DeletePolicyFor, len(soft)+len(hard), "every table has exactly one policy")
}
