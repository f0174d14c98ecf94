package main

import (
	"flag"
	"log"
	"os"

	"github.com/ImAKappa/btowntickets"
	"github.com/ImAKappa/btowntickets/profile"
)

func main() {
	var (
		format          string
		compressionType string
		csvDelimiter    string
		jsonOut         bool
	)

	flag.StringVar(&format, "format", "", "File format: csv or parquet. Detected from the extension if empty.")
	flag.StringVar(&compressionType, "compression", "", "Compression used: gzip or bzip2.")
	flag.StringVar(&csvDelimiter, "csv.delim", ",", "CSV delimiter.")
	flag.BoolVar(&jsonOut, "json", false, "Print the report as JSON.")

	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		log.Fatal("file name required")
	}

	r := btowntickets.Request{
		Path:        args[0],
		Format:      format,
		Compression: compressionType,
		Delimiter:   csvDelimiter,
	}

	t, err := btowntickets.Load(&r)
	if err != nil {
		log.Fatal(err)
	}

	report := profile.Nulls(t)

	if jsonOut {
		err = profile.WriteJSON(os.Stdout, report)
	} else {
		err = profile.WriteText(os.Stdout, report)
	}

	if err != nil {
		log.Fatal(err)
	}
}
