package biometrics

// Nombres de columna de la tabla Biometrics (useColumnNames=true).
const (
	ColumnDate         = "Date"
	ColumnHRV          = "HRV"
	ColumnHRVLower     = "hrv"
	ColumnSleepSeconds = "Sleep_Seconds"
	ColumnSleepHours   = "Sleep_Hours"
)

// Record es la lectura biométrica normalizada. Se construye en cada fetch.
type Record struct {
	Date         string  `json:"date"`
	HRV          float64 `json:"hrv"`          // ms
	SleepSeconds float64 `json:"sleepSeconds"` // s
	SleepHours   float64 `json:"sleepHours"`   // h
}

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Snapshot es lo que ve la UI: un Record o el indicador offline.
type Snapshot struct {
	Status Status  `json:"status"`
	Data   *Record `json:"data,omitempty"`
}
