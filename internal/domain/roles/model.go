package roles

import "time"

// Role es la identidad del día.
type Role struct {
	ID          string `json:"id"`
	Weekday     string `json:"weekday"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Hex         string `json:"hex"`
	Question    string `json:"question"`
	Description string `json:"description"`
}

var byWeekday = map[time.Weekday]Role{
	time.Monday: {
		ID:          "architect",
		Name:        "Arquitecto",
		Color:       "amber",
		Hex:         "#F59E0B",
		Question:    "¿Qué sistemas diseñaré hoy para el futuro?",
		Description: "Diseño de sistemas, planeación táctica y estructuración.",
	},
	time.Tuesday: {
		ID:          "sculptor",
		Name:        "Escultor",
		Color:       "blue",
		Hex:         "#3B82F6",
		Question:    "¿Qué obra mestra ejecutaré hoy con excelencia?",
		Description: "Ejecución profunda, creación de valor tangible.",
	},
	time.Wednesday: {
		ID:          "integrator",
		Name:        "Integrador",
		Color:       "emerald",
		Hex:         "#10B981",
		Question:    "¿Cómo se conecta esto con aquello?",
		Description: "Conexiones, reuniones estratégicas y sinergias.",
	},
	time.Thursday: {
		ID:          "analyst",
		Name:        "Analista",
		Color:       "red",
		Hex:         "#EF4444",
		Question:    "¿Qué dicen realmente los datos?",
		Description: "Revisión de métricas, KPIs y decisiones basadas en datos.",
	},
	time.Friday: {
		ID:          "philosopher",
		Name:        "Filósofo",
		Color:       "violet",
		Hex:         "#8B5CF6",
		Question:    "¿Por qué esto importa realmente?",
		Description: "Reflexión profunda, escritura y cuestionamiento.",
	},
	time.Saturday: {
		ID:          "explorer",
		Name:        "Explorador",
		Color:       "cyan",
		Hex:         "#06B6D4",
		Question:    "¿Qué territorio nuevo descubriré hoy?",
		Description: "Aprendizaje, curiosidad y salir de la zona de confort.",
	},
	time.Sunday: {
		ID:          "guardian",
		Name:        "Guardián",
		Color:       "gray",
		Hex:         "#6B7280",
		Question:    "¿Qué necesito proteger para mantener el equilibrio?",
		Description: "Integración, recuperación y protección del sistema.",
	},
}

// ForWeekday devuelve el rol del día; Monday si el día no está en la tabla.
func ForWeekday(d time.Weekday) Role {
	r, ok := byWeekday[d]
	if !ok {
		d = time.Monday
		r = byWeekday[d]
	}
	r.Weekday = d.String()
	return r
}

// All devuelve la semana empezando en lunes.
func All() []Role {
	out := make([]Role, 0, 7)
	for i := 1; i <= 7; i++ {
		out = append(out, ForWeekday(time.Weekday(i%7)))
	}
	return out
}
