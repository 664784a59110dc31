package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"github.com/jgs61/wheelofchumps/internal/config"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultRate        = 20
	defaultDuration    = 60 * time.Second
	defaultResultsFile = "load/artifacts/results.bin"
)

// validateSamples содержит корректные и отклоняемые значения для проверки полей.
var validateSamples = []struct {
	Field string `json:"field"`
	Value string `json:"value"`
}{
	{Field: "names", Value: "Load Alice, Load Bob, Load Carol"},
	{Field: "task", Value: "take out the recycling"},
	{Field: "names", Value: ""},
	{Field: "task", Value: "<script>alert(1)</script>"},
}

func main() {
	defaults := loadDefaults()
	var (
		baseURL   = flag.String("url", defaults.baseURL, "Base URL сервиса")
		rate      = flag.Int("rate", defaultRate, "Запросов в секунду")
		duration  = flag.Duration("duration", defaultDuration, "Длительность теста (например, 60s)")
		results   = flag.String("results", defaults.resultsFile, "Файл с результатами")
		setupOnly = flag.Bool("setup-only", false, "Только подготовка окружения (запуск вращения)")
		report    = flag.Bool("report", false, "Показать отчёт из сохранённых результатов")
		plot      = flag.Bool("plot", false, "Сгенерировать HTML график из сохранённых результатов")
	)
	flag.Parse()

	if *report {
		if err := renderReport(os.Stdout, *results); err != nil {
			log.Fatalf("Не удалось построить отчёт: %v", err)
		}
		return
	}

	if *plot {
		writePlotInstructions(os.Stdout, *results)
		return
	}

	if *setupOnly {
		if err := setupSpin(*baseURL); err != nil {
			log.Fatalf("Ошибка при подготовке окружения: %v", err)
		}
		return
	}

	fmt.Println("=== Нагрузочное тестирование с Vegeta ===")
	fmt.Printf("URL: %s\n", *baseURL)
	fmt.Printf("Rate: %d req/s\n", *rate)
	fmt.Printf("Duration: %s\n", *duration)
	fmt.Println()

	fmt.Println("1. Запуск вращения колеса...")
	if err := setupSpin(*baseURL); err != nil {
		log.Fatalf("Ошибка при подготовке окружения: %v", err)
	}

	fmt.Println()
	fmt.Println("2. Запуск нагрузочного тестирования...")
	if err := runLoadTest(os.Stdout, *baseURL, *rate, *duration, *results); err != nil {
		log.Fatalf("Ошибка при нагрузочном тестировании: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Тестирование завершено ===")
	fmt.Println("Для детального анализа выполните:")
	fmt.Printf("  go run ./load/cli -report\n")
	fmt.Printf("  go run ./load/cli -plot\n")
}

type flagDefaults struct {
	baseURL     string
	resultsFile string
}

// loadDefaults берёт порт и путь результатов из конфигурации сервиса, если она доступна.
func loadDefaults() flagDefaults {
	d := flagDefaults{baseURL: defaultBaseURL, resultsFile: defaultResultsFile}
	cfg, err := config.Load()
	if err != nil {
		return d
	}
	d.baseURL = "http://localhost:" + cfg.HTTP.Port
	d.resultsFile = cfg.LoadTests.ResultsPath
	return d
}

// setupSpin запускает одно вращение, чтобы /spin/state отдавал живое состояние.
// 409 означает, что колесо уже крутится, это тоже подходит.
func setupSpin(baseURL string) error {
	body, err := json.Marshal(map[string]string{
		"names": "Load Alice, Load Bob, Load Carol",
		"task":  "review the load report",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("%s/spin/start", baseURL),
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	})

	attacker := vegeta.NewAttacker()
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: 1, Per: time.Second}, time.Second, "setup") {
		metrics.Add(res)
	}
	metrics.Close()

	if metrics.StatusCodes["202"] == 0 && metrics.StatusCodes["409"] == 0 {
		return fmt.Errorf("не удалось запустить вращение: статус %v", metrics.StatusCodes)
	}

	fmt.Println("Колесо запущено (или уже вращалось)")
	return nil
}

// runLoadTest атакует API колеса, сохраняет результаты в resultsPath и печатает отчёт в out.
func runLoadTest(out io.Writer, baseURL string, rate int, duration time.Duration, resultsPath string) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", rate)
	}
	targeter := newWheelTargeter(baseURL)

	attacker := vegeta.NewAttacker(
		vegeta.Timeout(30*time.Second),
		vegeta.Workers(uint64(rate)),
	)

	var metrics vegeta.Metrics
	ctx, cancel := context.WithTimeout(context.Background(), duration+5*time.Second)
	defer cancel()

	rateLimit := vegeta.Rate{Freq: rate, Per: time.Second}
	results := attacker.Attack(targeter, rateLimit, duration, "load-test")

	var allResults []vegeta.Result
	for res := range results {
		if ctx.Err() != nil {
			attacker.Stop()
			continue
		}
		metrics.Add(res)
		allResults = append(allResults, *res)
	}
	metrics.Close()

	if err := saveResults(resultsPath, allResults); err != nil {
		return fmt.Errorf("сохранить результаты: %w", err)
	}
	fmt.Fprintf(out, "Результаты сохранены в %s\n", resultsPath)

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter(out); err != nil {
		return fmt.Errorf("сгенерировать отчёт: %w", err)
	}

	return nil
}

// newWheelTargeter чередует GET /spin/state и POST /input/validate по выборке полей.
func newWheelTargeter(baseURL string) vegeta.Targeter {
	var seq atomic.Uint64
	return func(t *vegeta.Target) error {
		n := seq.Add(1) - 1
		if n%2 == 0 {
			*t = vegeta.Target{
				Method: http.MethodGet,
				URL:    fmt.Sprintf("%s/spin/state", baseURL),
			}
			return nil
		}

		sample := validateSamples[(n/2)%uint64(len(validateSamples))]
		body, err := json.Marshal(sample)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		*t = vegeta.Target{
			Method: http.MethodPost,
			URL:    fmt.Sprintf("%s/input/validate", baseURL),
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   body,
		}
		return nil
	}
}

// saveResults пишет результаты в бинарном формате vegeta.
func saveResults(path string, results []vegeta.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("создать директорию: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создать файл: %w", err)
	}
	defer file.Close()

	encoder := vegeta.NewEncoder(file)
	for i := range results {
		if err := encoder.Encode(&results[i]); err != nil {
			return fmt.Errorf("записать результат: %w", err)
		}
	}
	return nil
}

// renderReport строит текстовый отчёт vegeta по сохранённым результатам.
func renderReport(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	decoder := vegeta.NewDecoder(file)
	var metrics vegeta.Metrics
	for {
		var res vegeta.Result
		if err := decoder.Decode(&res); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("decode result: %w", err)
		}
		metrics.Add(&res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics)(out)
}

func writePlotInstructions(out io.Writer, resultsPath string) {
	fmt.Fprintln(out, "Для генерации HTML графика используйте CLI утилиту vegeta:")
	fmt.Fprintf(out, "  vegeta plot %s > load/artifacts/plot.html\n", resultsPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Установка CLI утилиты:")
	fmt.Fprintln(out, "  go install github.com/tsenart/vegeta/v12@latest")
}
