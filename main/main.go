package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tigress-gc/gcpost/analysis"
	"github.com/tigress-gc/gcpost/cooling"
	"github.com/tigress-gc/gcpost/derived"
	"github.com/tigress-gc/gcpost/grid"
	"github.com/tigress-gc/gcpost/io"
	"github.com/tigress-gc/gcpost/units"
)

func main() {
	var (
		sumFields, countSNe string
		exampleConfig       string
	)
	vars := map[string]*string{
		"SumFields":     &sumFields,
		"CountSNe":      &countSNe,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sumFields, "SumFields", "",
		"Configuration file for [SumFields] mode.",
	)
	flag.StringVar(
		&countSNe, "CountSNe", "",
		"Configuration file for [CountSNe] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'SumFields' and 'CountSNe'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "SumFields":
		con, err := io.ReadSumFieldsConfig(sumFields)
		if err != nil {
			log.Fatal(err.Error())
		}
		setLog(&con.SharedConfig)
		sumFieldsMain(con)
	case "CountSNe":
		con, err := io.ReadCountSNeConfig(countSNe)
		if err != nil {
			log.Fatal(err.Error())
		}
		setLog(&con.SharedConfig)
		countSNeMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "SumFields":
			fmt.Println(io.ExampleSumFieldsFile)
		case "CountSNe":
			fmt.Println(io.ExampleCountSNeFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'SumFields' and 'CountSNe'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gcpost "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setLog(con *io.SharedConfig) {
	if !con.ValidLogFile() {
		return
	}
	f, err := os.Create(con.LogFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.SetOutput(f)
}

func sumFieldsMain(con *io.SumFieldsConfig) {
	d, err := con.Domain()
	if err != nil {
		log.Fatal(err.Error())
	}

	tab := cooling.KoyamaInutsuka()
	if con.CoolFile != "" {
		tab, err = cooling.ReadTable(con.CoolFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
	eng := derived.NewEngine(tab, units.New())

	nums := make([]int, 0, con.End-con.Start+1)
	for num := con.Start; num <= con.End; num++ {
		nums = append(nums, num)
	}

	loader := io.NewNetCDFLoader(con.Input, d)
	log.Printf("Summing %d snapshots from %s", len(nums), con.Input)
	sum, err := analysis.SumDataset(loader, eng, nums, con.Twophase)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := io.WriteDataset(con.Output, sum); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s", con.Output)
}

func countSNeMain(con *io.CountSNeConfig) {
	d, err := con.Domain()
	if err != nil {
		log.Fatal(err.Error())
	}

	events, err := io.ReadSNEvents(con.SNFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d SN events from %s", len(events), con.SNFile)

	counts := analysis.CountSNe(d, events, con.TStart, con.TEnd, con.NCrit)

	out := grid.NewDataset(d)
	out.Fields["NSNe"] = counts
	if err := io.WriteDataset(con.Output, out); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s", con.Output)
}
