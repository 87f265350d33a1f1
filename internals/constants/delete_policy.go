package constants

/* =========================================================
   DELETE POLICY (per entity type, decided at the data-model
   layer — not ad hoc per handler)
   ========================================================= */

type DeletePolicy string

const (
	// SoftDeletable: rows carry an is_deleted flag, DELETE moves to trash,
	// trash listing + restore are supported.
	SoftDeletable DeletePolicy = "soft"
	// HardDeletable: DELETE removes the row permanently.
	HardDeletable DeletePolicy = "hard"
)

// DeletePolicyFor maps GORM table names to their deletion policy.
// Tests assert handlers honor this uniformly.
var DeletePolicyFor = map[string]DeletePolicy{
	"batches":          SoftDeletable,
	"courses":          SoftDeletable,
	"skills":           SoftDeletable,
	"students":         SoftDeletable,
	"employees":        SoftDeletable,
	"visitors":         SoftDeletable,
	"fees":             HardDeletable,
	"fee_installments": HardDeletable,
	"timetable_slots":  HardDeletable,
	"attendances":      HardDeletable,
	"batch_mappings":   HardDeletable,
	"feedbacks":        HardDeletable,
}
