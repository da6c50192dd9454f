package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/galplot/io"
	"github.com/phil-mansfield/galplot/plot"
)

func main() {
	var (
		configFile    string
		exampleConfig bool
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Configuration file selecting the input tables and figures.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Print an example configuration file and exit.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExamplePlotsFile)
		os.Exit(0)
	}
	if configFile == "" {
		log.Fatalf("Usage: $ %s -Config plots.config", os.Args[0])
	}

	con, err := io.ReadPlotsConfig(configFile)
	if err != nil { log.Fatal(err.Error()) }

	if con.SFHFile != "" || con.SchmidtFile != "" {
		sim, err := io.ReadSnapshot(con.StarFile, con.GasFile, con.TimeGyr)
		if err != nil { log.Fatal(err.Error()) }
		log.Printf(
			"Read %d star and %d gas particles.",
			sim.Star.Len(), sim.Gas.Len(),
		)

		if con.SFHFile != "" {
			opt := plot.DefaultSFHOptions
			opt.File = con.SFHFile
			opt.MassForm = con.MassForm
			if _, err := plot.SFH(sim, &opt); err != nil {
				log.Fatal(err.Error())
			}
		}

		if con.SchmidtFile != "" {
			opt := plot.DefaultSchmidtOptions
			opt.File = con.SchmidtFile
			opt.Center = con.Recenter
			opt.PreTime = con.PreTimeMyr
			opt.DiskHeight = con.DiskHeightKpc
			opt.RMax = con.RMaxKpc
			if _, err := plot.SchmidtLaw(sim, &opt); err != nil {
				log.Fatal(err.Error())
			}
		}
	}

	if con.SatLFFile != "" {
		host, cat, err := io.ReadHalos(con.HaloFile, con.Band, con.HostMass)
		if err != nil { log.Fatal(err.Error()) }
		log.Printf("Read %d satellites.", cat.Len())

		opt := plot.DefaultSatLFOptions
		opt.File = con.SatLFFile
		opt.Band = con.Band
		data, err := plot.SatLF(host, cat, &opt)
		if err != nil { log.Fatal(err.Error()) }
		if len(data.Skipped) > 0 {
			log.Printf("Skipped %d satellites without stars.",
				len(data.Skipped))
		}
	}

	plt.Execute()
}
