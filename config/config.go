package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
)

type UserEntry struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Config struct {
	AppName        string      `json:"app_name"`
	ListenIP       string      `json:"listen_ip"`
	ListenPort     int         `json:"listen_port"`
	SessionKey     string      `json:"session_key"`
	DBPath         string      `json:"db_path"`
	UploadDir      string      `json:"upload_dir"`
	SessionMinutes int         `json:"session_minutes"` // 0 = non-expiring
	AuthPolicy     string      `json:"auth_policy"`     // "bcrypt" or "plaintext"
	LoginCaptcha   bool        `json:"login_captcha"`
	Users          []UserEntry `json:"users"`
}

var AppConfig Config

// DefaultUsers is the built-in credential table used when the config file
// does not define one.
var DefaultUsers = []UserEntry{
	{Username: "fatima", Password: "stud123", Role: "student"},
	{Username: "ali", Password: "stud123", Role: "student"},
	{Username: "salim", Password: "stud123", Role: "student"},
	{Username: "office_admin", Password: "secure123", Role: "admin"},
}

func LoadConfig(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Defaults that the file may override. SessionMinutes defaults to 30;
	// an explicit 0 in the file means non-expiring sessions.
	AppConfig = Config{
		AppName:        "Lost & Found",
		ListenIP:       "127.0.0.1",
		ListenPort:     8080,
		DBPath:         "./lostfound.db",
		UploadDir:      "./static/uploads",
		SessionMinutes: 30,
		AuthPolicy:     "bcrypt",
	}

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&AppConfig); err != nil {
		return err
	}

	// Override with environment variables if present
	if envKey := os.Getenv("LOSTFOUND_SESSION_KEY"); envKey != "" {
		AppConfig.SessionKey = envKey
	}
	if envPath := os.Getenv("LOSTFOUND_DB_PATH"); envPath != "" {
		AppConfig.DBPath = envPath
	}
	if envDir := os.Getenv("LOSTFOUND_UPLOAD_DIR"); envDir != "" {
		AppConfig.UploadDir = envDir
	}

	if AppConfig.AuthPolicy == "" {
		AppConfig.AuthPolicy = "bcrypt"
	}

	if len(AppConfig.Users) == 0 {
		AppConfig.Users = DefaultUsers
	}

	// If no key is provided or it's the placeholder, generate a secure random one
	if AppConfig.SessionKey == "" || AppConfig.SessionKey == "CHANGE_ME_IN_PRODUCTION" {
		log.Println("WARNING: No session key configured. Generating a random key. Sessions will be invalidated on restart.")
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err != nil {
			return err
		}
		AppConfig.SessionKey = hex.EncodeToString(randomKey)
	}

	return nil
}
