package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strings"

	"lostfound/auth"
	"lostfound/config"
	"lostfound/db"
	"lostfound/i18n"
	"lostfound/models"
	"lostfound/upload"

	"github.com/dchest/captcha"
	"github.com/gorilla/csrf"
)

//go:embed templates/*.html
var templatesFS embed.FS

// registry is injected once at startup via RegisterHandlers. Tests pass
// their own registry with test credentials.
var registry *auth.Registry

func RegisterHandlers(mux *http.ServeMux, reg *auth.Registry) {
	registry = reg

	mux.HandleFunc("/", IndexHandler)
	mux.HandleFunc("/login", LoginHandler)
	mux.HandleFunc("/logout", LogoutHandler)
	mux.HandleFunc("/dashboard", DashboardHandler)
	mux.HandleFunc("/items", ItemsHandler)
	mux.HandleFunc("/report", ReportHandler)

	if config.AppConfig.LoginCaptcha {
		mux.Handle("/captcha/", captcha.Server(captcha.StdWidth, captcha.StdHeight))
	}
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.Authorize(w, r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		if config.AppConfig.LoginCaptcha {
			if !captcha.VerifyString(r.FormValue("captcha_id"), r.FormValue("captcha_solution")) {
				renderLogin(w, r, "Incorrect CAPTCHA answer.")
				return
			}
		}

		user, ok := registry.Verify(username, password)
		if !ok {
			// Generic on purpose: never reveal whether the username exists.
			renderLogin(w, r, "Invalid username or password")
			return
		}

		auth.SetSession(w, r, user.Username, user.Role)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderLogin(w, r, "")
}

func renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := map[string]any{"Error": errMsg}
	if config.AppConfig.LoginCaptcha {
		data["CaptchaID"] = captcha.New()
	}
	renderTemplate(w, r, "login.html", data)
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.Authorize(w, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Username": user.Username,
		"Role":     user.Role,
	})
}

func ItemsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.Authorize(w, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	items, err := db.ListItems(q)
	if err != nil {
		log.Printf("Error listing items: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, r, "items.html", map[string]any{
		"Items":    items,
		"Query":    q,
		"Username": user.Username,
		"Role":     user.Role,
	})
}

func ReportHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.Authorize(w, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		itemType := r.FormValue("item_type")
		if itemType != models.TypeFound {
			itemType = models.TypeLost
		}
		title := strings.TrimSpace(r.FormValue("title"))
		location := strings.TrimSpace(r.FormValue("location"))
		description := strings.TrimSpace(r.FormValue("description"))

		// A non-multipart or fileless submission simply has no image.
		file, header, err := r.FormFile("image")
		clientName := ""
		if err == nil {
			defer file.Close()
			clientName = header.Filename
		}

		if msg := validateReport(title, location, description, clientName); msg != "" {
			renderReport(w, r, user, msg)
			return
		}

		imageName := ""
		if clientName != "" {
			imageName = upload.SanitizeFilename(clientName)
			if imageName == "" {
				renderReport(w, r, user, errInvalidFileType)
				return
			}
			if err := upload.Save(config.AppConfig.UploadDir, imageName, file); err != nil {
				log.Printf("Error saving upload %q: %v", imageName, err)
				http.Error(w, "Error saving uploaded file", http.StatusInternalServerError)
				return
			}
		}

		_, err = db.InsertItem(models.Item{
			Type:        itemType,
			Title:       title,
			Location:    location,
			Status:      models.StatusPending,
			Description: description,
			Image:       imageName,
		})
		if err != nil {
			log.Printf("Error inserting item: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/items", http.StatusSeeOther)
		return
	}

	renderReport(w, r, user, "")
}

func renderReport(w http.ResponseWriter, r *http.Request, user models.User, errMsg string) {
	renderTemplate(w, r, "report.html", map[string]any{
		"Error":    errMsg,
		"Username": user.Username,
		"Role":     user.Role,
	})
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	lang := i18n.DetectLanguage(r)

	funcMap := template.FuncMap{
		"T": func(key string) string {
			return i18n.T(lang, key)
		},
	}

	tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Prepare CSRF field
	csrfField := csrf.TemplateField(r)

	// If data is a map, ensure AppName and Lang are there
	if m, ok := data.(map[string]any); ok {
		if _, exists := m["AppName"]; !exists {
			m["AppName"] = config.AppConfig.AppName
		}
		m["Lang"] = lang
		m["csrfField"] = csrfField
	} else if data == nil {
		data = map[string]any{
			"AppName":   config.AppConfig.AppName,
			"Lang":      lang,
			"csrfField": csrfField,
		}
	}

	tmpl.ExecuteTemplate(w, "layout", data)
}
