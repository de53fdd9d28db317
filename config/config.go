package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret      string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Issuer         string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

// FileConfig is the optional YAML overlay pointed at by CONFIG_FILE.
// Values set here win over environment variables.
type FileConfig struct {
	ServerPort string `yaml:"server_port"`
	Issuer     string `yaml:"issuer"`
	Database   struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Minio struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		UseSSL    bool   `yaml:"use_ssl"`
		Bucket    string `yaml:"bucket"`
	} `yaml:"minio"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "loadboard")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "loadboard")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "load-documents")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyConfigFile(path); err != nil {
			log.Printf("Warning: could not apply config file %s: %v", path, err)
		}
	}
}

func applyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	setIfPresent(&ServerPort, fc.ServerPort)
	setIfPresent(&Issuer, fc.Issuer)
	setIfPresent(&DbHost, fc.Database.Host)
	setIfPresent(&DbPort, fc.Database.Port)
	setIfPresent(&DbUser, fc.Database.User)
	setIfPresent(&DbPassword, fc.Database.Password)
	setIfPresent(&DbName, fc.Database.Name)
	setIfPresent(&MinioEndpoint, fc.Minio.Endpoint)
	setIfPresent(&MinioAccessKey, fc.Minio.AccessKey)
	setIfPresent(&MinioSecretKey, fc.Minio.SecretKey)
	setIfPresent(&MinioBucket, fc.Minio.Bucket)
	if fc.Minio.UseSSL {
		MinioUseSSL = true
	}

	return nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// DSN builds the Postgres connection string shared by the API server
// and the migrate CLI.
func DSN() string {
	return "host=" + DbHost +
		" port=" + DbPort +
		" user=" + DbUser +
		" password=" + DbPassword +
		" dbname=" + DbName +
		" sslmode=disable"
}
