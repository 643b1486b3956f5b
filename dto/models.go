package dto

// Page is the decoded content of a single report page, as produced by the
// PDF processing layer: plain text plus zero or more extracted cell grids.
type Page struct {
	Text   string  `json:"text"`
	Tables []Table `json:"tables,omitempty"`
}

// Table is one extracted grid of cells. Rows[0] is the printed header row.
// An absent cell is represented as the empty string; a cell may contain
// several newline-joined lines when the report wraps values inside one box.
type Table struct {
	Rows [][]string `json:"rows"`
}

// LineItem is one accepted row of the daily report, generally one patient
// visit. JSON field names follow the frontend contract.
type LineItem struct {
	Number        int    `json:"number"`         // 受付番号
	PatientID     string `json:"patient_id"`     // "No.xxxxx" identifier, may be empty
	Name          string `json:"name"`           // 患者名
	InsuranceType string `json:"insurance_type"` // raw 保険種別 label, unclassified
	Points        int    `json:"points"`         // 点数
	BurdenAmount  int    `json:"burden_amount"`  // 負担額
	KaigoUnits    int    `json:"kaigo_units"`    // 介護単位
	KaigoBurden   int    `json:"kaigo_burden"`   // 介護負担額
	Jihi          int    `json:"jihi"`           // 自費
	Bushan        int    `json:"bushan"`         // 物販
	ZenkaiSagaku  int    `json:"zenkai_sagaku"`  // 前回差額
	ReceiptAmount int    `json:"receipt_amount"` // 領収額
	Sagaku        int    `json:"sagaku"`         // 差額
	Remarks       string `json:"remarks"`        // 備考
}

// ReportSummary holds the document-level aggregates of one daily report.
// Depending on the aggregation strategy the values come either from the
// printed total rows (text regex) or from the accepted line items (table).
type ReportSummary struct {
	Date string `json:"date"` // YYYY-MM-DD

	ShahoCount       int `json:"shaho_count"`
	ShahoPoints      int `json:"shaho_points"`
	ShahoAmount      int `json:"shaho_amount"`
	KokuhoCount      int `json:"kokuho_count"`
	KokuhoPoints     int `json:"kokuho_points"`
	KokuhoAmount     int `json:"kokuho_amount"`
	KoukiCount       int `json:"kouki_count"`
	KoukiPoints      int `json:"kouki_points"`
	KoukiAmount      int `json:"kouki_amount"`
	HokenNashiCount  int `json:"hoken_nashi_count"`
	HokenNashiPoints int `json:"hoken_nashi_points"`
	HokenNashiAmount int `json:"hoken_nashi_amount"`

	// jihi_count exists for frontend compatibility; the report prints no
	// per-category row for self-pay so it is never populated from text.
	JihiCount  int `json:"jihi_count"`
	JihiAmount int `json:"jihi_amount"`

	TotalCount    int `json:"total_count"`
	TotalAmount   int `json:"total_amount"`
	LineItemCount int `json:"line_item_count"`
	InsuredCount  int `json:"insured_count"`
	ReceiptTotal  int `json:"receipt_total"`

	BushanAmount int `json:"bushan_amount"` // 物販合計
	KaigoAmount  int `json:"kaigo_amount"`  // 介護
	ZenkaiSagaku int `json:"zenkai_sagaku"` // 前回差額
}

// ExtractionResult is the engine's sole output: document aggregates, the
// ordered accepted line items, and the derived per-line difference total.
type ExtractionResult struct {
	Summary ReportSummary `json:"summary"`
	// LineItems preserves table order across pages. Never nil.
	LineItems []LineItem `json:"line_items"`
	// TodayDifference is the sum of Sagaku over LineItems. It is computed
	// from the line items only and is deliberately distinct from the
	// carried-over ZenkaiSagaku in the summary.
	TodayDifference int `json:"today_difference"`
}
