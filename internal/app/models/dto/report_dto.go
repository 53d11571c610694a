package dto

// FieldCount is one field's head-count inside a cycle.
type FieldCount struct {
	FieldName    string `json:"fieldName" example:"Computer Science"`
	StudentCount int64  `json:"studentCount" example:"42"`
}

// CycleFieldCount groups the per-field head-counts of one cycle. Cycles
// without any counted field are omitted from the report.
type CycleFieldCount struct {
	CycleID   int64        `json:"cycleId" example:"1"`
	CycleName string       `json:"cycleName" example:"Engineering"`
	Fields    []FieldCount `json:"fields"`
}

// TotalCount is the scalar head-count envelope body.
type TotalCount struct {
	Total int64 `json:"total" example:"128"`
}
