package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Input      Input      `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Coverage   Coverage   `mapstructure:",squash"`
	Aggregator Aggregator `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Database struct {
	Driver string `mapstructure:"database_driver"`
	DSN    string `mapstructure:"database_dsn"`
}

type Input struct {
	Path              string `mapstructure:"input_path"`
	TypeOverridesPath string `mapstructure:"type_overrides_path"`
	InsertBatchSize   int    `mapstructure:"insert_batch_size"`
}

type Output struct {
	Dir string `mapstructure:"output_dir"`
}

type Coverage struct {
	YearsRaw string `mapstructure:"coverage_years"`
	Years    []int  `mapstructure:"-"`
}

type Aggregator struct {
	MonthlyPatternYear         int `mapstructure:"monthly_pattern_year"`
	TopProductsLimit           int `mapstructure:"top_products_limit"`
	TopSuppliersLimit          int `mapstructure:"top_suppliers_limit"`
	SupplierConcentrationLimit int `mapstructure:"supplier_concentration_limit"`
	WholesaleRatioThreshold    int `mapstructure:"wholesale_ratio_threshold"`
	WholesaleRatioLimit        int `mapstructure:"wholesale_ratio_limit"`
	DiversificationMinProducts int `mapstructure:"diversification_min_products"`
	DiversificationLimit       int `mapstructure:"diversification_limit"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_DRIVER", "sqlite3")
	viper.SetDefault("DATABASE_DSN", ":memory:")

	viper.SetDefault("INPUT_PATH", "data/warehouse_and_retail_sales.csv")
	viper.SetDefault("TYPE_OVERRIDES_PATH", "")
	viper.SetDefault("INSERT_BATCH_SIZE", 500)

	viper.SetDefault("OUTPUT_DIR", "out")

	viper.SetDefault("COVERAGE_YEARS", "2017,2018,2019,2020")

	// Parâmetros do catálogo de agregações
	viper.SetDefault("MONTHLY_PATTERN_YEAR", 2019)
	viper.SetDefault("TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("TOP_SUPPLIERS_LIMIT", 10)
	viper.SetDefault("SUPPLIER_CONCENTRATION_LIMIT", 15)
	viper.SetDefault("WHOLESALE_RATIO_THRESHOLD", 1000)
	viper.SetDefault("WHOLESALE_RATIO_LIMIT", 20)
	viper.SetDefault("DIVERSIFICATION_MIN_PRODUCTS", 50)
	viper.SetDefault("DIVERSIFICATION_LIMIT", 15)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	years, err := parseYears(config.Coverage.YearsRaw)
	if err != nil {
		return nil, fmt.Errorf("COVERAGE_YEARS inválido: %w", err)
	}
	config.Coverage.Years = years

	return config, nil
}

// parseYears converte a lista "2017,2018,..." em anos na ordem informada
func parseYears(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("ano inválido %q: %w", part, err)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("nenhum ano informado")
	}
	return years, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
