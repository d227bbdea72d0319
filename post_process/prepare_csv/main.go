// Converts the output of "go test -bench" to a CSV with one series
// per column and one key amount per row (to be drawn as a chart).
//
// Usage: prepare_csv <bench-output-file> <action> <keyType>
// For example: prepare_csv bench.txt Get int
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var benchmarkLineRegexp = regexp.MustCompile(
	`^Benchmark([A-Za-z]+)_([A-Za-z]+)_([a-z]+)KeyType_sizeHint([0-9]+)_keyAmount([0-9]+)(?:-[0-9]+)?\s+[0-9]+\s+([0-9.]+) ns/op`)

func checkErr(err error) {
	if err == nil {
		return
	}
	panic(err)
}

func averageF32(values ...float32) float32 {
	sum := float32(0)
	for _, value := range values {
		sum += value
	}
	return sum / float32(len(values))
}

func main() {
	if len(os.Args) < 2 {
		panic(`It's required to pass the benchmark output file path as an argument`)
	}
	if len(os.Args) < 3 {
		panic(`It's required to pass an action name (for example: "Get")`)
	}
	if len(os.Args) < 4 {
		panic(`It's required to pass a keyType name (for example: "int")`)
	}

	filePath := os.Args[1]
	requiredActionName := os.Args[2]
	requiredKeyTypeName := os.Args[3]

	file, err := os.Open(filePath)
	checkErr(err)
	defer file.Close()

	seriesNamesMap := map[string]bool{}
	results := map[int]map[string][]float32{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		matches := benchmarkLineRegexp.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		actionName := matches[1]
		mapTypeName := matches[2]
		keyTypeName := matches[3]
		sizeHintStr := matches[4]
		keyAmountStr := matches[5]
		opExecTimeStr := matches[6]

		if actionName != requiredActionName {
			continue
		}
		if keyTypeName != requiredKeyTypeName {
			continue
		}

		seriesName := mapTypeName + "_" + actionName + "_" + keyTypeName + "_sh" + sizeHintStr
		seriesNamesMap[seriesName] = true

		keyAmount, err := strconv.Atoi(keyAmountStr)
		checkErr(err)

		if results[keyAmount] == nil {
			results[keyAmount] = map[string][]float32{}
		}

		opExecTime, err := strconv.ParseFloat(opExecTimeStr, 32)
		checkErr(err)

		results[keyAmount][seriesName] = append(results[keyAmount][seriesName], float32(opExecTime))
	}
	checkErr(scanner.Err())

	seriesNames := []string{}
	for seriesName := range seriesNamesMap {
		seriesNames = append(seriesNames, seriesName)
	}
	sort.Strings(seriesNames)

	keyAmounts := []int{}
	for keyAmount := range results {
		keyAmounts = append(keyAmounts, keyAmount)
	}
	sort.Ints(keyAmounts)

	fmt.Println("," + strings.Join(seriesNames, ","))

	for _, keyAmount := range keyAmounts {
		fmt.Printf("%v", keyAmount)

		serieses := results[keyAmount]
		for _, seriesName := range seriesNames {
			values := serieses[seriesName]
			if len(values) == 0 {
				fmt.Printf(",")
				continue
			}

			fmt.Printf(",%.1f", averageF32(values...))
		}
		fmt.Printf("\n")
	}
}
