package dashboard

type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type Manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Description     string `json:"description"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
	Icons           []Icon `json:"icons"`
}

const slate900 = "#0f172a"

// AppManifest es el web app manifest de la PWA.
func AppManifest() Manifest {
	return Manifest{
		Name:            "Zenith OS",
		ShortName:       "Zenith",
		Description:     "Sistema Operativo de Vida y Alto Rendimiento",
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: slate900,
		ThemeColor:      slate900,
		Icons: []Icon{
			{Src: "/icon-192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/icon-512.png", Sizes: "512x512", Type: "image/png"},
			{Src: "/apple-icon.png", Sizes: "180x180", Type: "image/png"},
		},
	}
}
