package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/openhaul/loadboard/config"
	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/db/migrations"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [up|down|status]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  up      apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down    roll back the most recent migration (-n to roll back more)")
	fmt.Fprintln(os.Stderr, "  status  list applied revisions")
	os.Exit(2)
}

func main() {
	steps := flag.Int("n", 1, "number of migrations to roll back with the down command")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	config.LoadConfig()

	sqlDB, err := db.OpenSQL()
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer sqlDB.Close()

	switch flag.Arg(0) {
	case "up":
		n, err := db.MigrateUp(sqlDB)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		fmt.Printf("applied %d migration(s)\n", n)
	case "down":
		n, err := db.MigrateDown(sqlDB, *steps)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("rolled back %d migration(s)\n", n)
	case "status":
		records, err := db.MigrationRecords(sqlDB)
		if err != nil {
			log.Fatalf("read migration records: %v", err)
		}
		head, err := migrations.Head()
		if err != nil {
			log.Fatalf("resolve head revision: %v", err)
		}
		for _, r := range records {
			fmt.Printf("%s\t%s\n", r.Id, r.AppliedAt.Format("2006-01-02 15:04:05"))
		}
		if len(records) == 0 {
			fmt.Println("no migrations applied")
		} else if records[len(records)-1].Id == head {
			fmt.Println("schema is up to date")
		} else {
			fmt.Printf("head revision is %s, pending migrations remain\n", head)
		}
	default:
		usage()
	}
}
