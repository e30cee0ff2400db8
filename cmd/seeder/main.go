package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hirebuddy/scout"
	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/ingestion"
)

// Sample corpus for local development. Dates are spread over the weeks
// before seeding so recency scoring has something to bite on.
var postings = []seedPosting{
	{"Senior Go Engineer", "Acme Corp", "Bangalore", "Build and operate high throughput payment services in Go. 5+ years experience required.", []string{"go", "grpc", "kubernetes"}, false, 2},
	{"Backend Developer", "Acme Corp", "Bengaluru", "Work on our core ledger APIs. Golang and PostgreSQL.", []string{"golang", "postgres"}, false, 5},
	{"React Developer", "PixelWorks", "remote", "Frontend role on our design tooling. Fully remote within IST hours.", []string{"react", "typescript"}, true, 1},
	{"Senior React Developer", "PixelWorks", "Mumbai", "Lead the component library effort. Hybrid, 3 days in office.", []string{"react", "design-systems"}, false, 9},
	{"Data Analyst", "Finlytics", "Gurgaon", "SQL heavy analyst role supporting the credit team.", []string{"sql", "python"}, false, 12},
	{"Junior Data Analyst", "Finlytics", "Gurugram", "Entry level analyst position. Fresh graduates welcome.", []string{"sql", "excel"}, false, 3},
	{"Staff Engineer, Infrastructure", "Cloudline", "Hyderabad", "Own our Kubernetes platform. 10+ years building distributed systems.", []string{"kubernetes", "terraform", "aws"}, false, 20},
	{"DevOps Engineer", "Cloudline", "remote", "CI/CD and observability work. Remote first team.", []string{"devops", "prometheus", "grafana"}, true, 6},
	{"Engineering Manager", "Cloudline", "Hyderabad", "Lead a team of eight platform engineers.", []string{"management"}, false, 15},
	{"Machine Learning Intern", "Neuronic", "Pune", "Six month internship on our recommendation models.", []string{"python", "pytorch"}, false, 4},
	{"ML Engineer", "Neuronic", "Pune", "Productionize models with 3+ years of Python experience.", []string{"python", "mlops"}, false, 8},
	{"Principal Architect", "Neuronic", "Bombay", "Define the technical roadmap across teams.", []string{"architecture"}, false, 30},
	{"Frontend Engineer", "Shoply", "Chennai", "Vue storefront work, hybrid schedule.", []string{"vue", "javascript"}, false, 7},
	{"Full Stack Developer", "Shoply", "Madras", "Node and React across our seller tools.", []string{"node", "react"}, false, 11},
	{"QA Engineer", "Shoply", "Chennai", "Own test automation for checkout. Work from home allowed two days a week.", []string{"selenium", "cypress"}, false, 14},
	{"Site Reliability Engineer", "Streamly", "remote", "Keep our video pipeline at four nines. Remote anywhere in India.", []string{"sre", "go", "linux"}, true, 2},
	{"Senior Android Developer", "Streamly", "Delhi", "Kotlin playback work in our mobile team.", []string{"kotlin", "android"}, false, 10},
	{"iOS Developer", "Streamly", "New Delhi", "Swift role, 2+ years shipping consumer apps.", []string{"swift", "ios"}, false, 18},
	{"Security Engineer", "Vaultic", "Noida", "Application security reviews and tooling.", []string{"security", "go"}, false, 5},
	{"Platform Engineer", "Vaultic", "remote", "Build internal developer platforms. WFH friendly.", []string{"platform", "kubernetes"}, true, 1},
}

type seedPosting struct {
	title       string
	company     string
	location    string
	description string
	tags        []string
	remote      bool
	daysAgo     int
}

var (
	dbPath       = flag.String("db", "./jobs_db", "path to the database directory")
	seedFileName = flag.String("src", "", "JSON feed file of seed data")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func slugify(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, s)
}

func builtinJobs() []*core.JobRecord {
	now := time.Now().UTC()
	jobs := make([]*core.JobRecord, 0, len(postings))
	for _, p := range postings {
		jobs = append(jobs, &core.JobRecord{
			Title:       p.title,
			Company:     p.company,
			Location:    p.location,
			Description: p.description,
			Tags:        p.tags,
			IsRemote:    p.remote,
			URL:         "https://example.com/jobs/" + slugify(p.company+" "+p.title),
			PostedAt:    now.AddDate(0, 0, -p.daysAgo),
		})
	}
	return jobs
}

func main() {
	db, err := scout.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	var jobs []*core.JobRecord
	if *seedFileName != "" {
		f, err := os.Open(*seedFileName)
		if err != nil {
			panic(err)
		}
		jobs, err = ingestion.DecodeJobs(f)
		f.Close()
		if err != nil {
			panic(err)
		}
	} else {
		jobs = builtinJobs()
	}

	result, err := pipeline.Ingest(ctx, jobs, "seeder")
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete", "imported", result.Imported, "skipped", result.Skipped)
}
