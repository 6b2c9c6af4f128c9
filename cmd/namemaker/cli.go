package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrymomot/namemaker/pkg/namegen"
)

// run dispatches the command-line arguments against the generator. All name
// output goes to stdout, one name per line; informational errors go to stderr
// followed by the usage text. Errors never translate into a non-zero exit
// code, so run reports nothing back to main.
func run(gen *namegen.Generator, args []string, stdout, stderr io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(stdout, gen.Generate())
		return
	}

	switch args[0] {
	case "-h", "--help":
		printUsage(stdout)
	case "-m", "--male":
		runGendered(gen, namegen.Male, args[1:], stdout, stderr)
	case "-f", "--female":
		runGendered(gen, namegen.Female, args[1:], stdout, stderr)
	case "-M", "--many":
		runMany(gen, args[1:], stdout, stderr)
	case "-F", "--family":
		runFamily(gen, args[1:], stdout, stderr)
	default:
		// A bare argument is a quick "generate this many" shortcut.
		amount, ok := parseAmount(args[0])
		if !ok || len(args) > 1 {
			fail(stderr, "Could not parse the amount of names to be generated.")
			return
		}
		if names, ok := gen.GenerateMany(amount); ok {
			printNames(stdout, names)
		}
	}
}

func runGendered(gen *namegen.Generator, gender namegen.Gender, args []string, stdout, stderr io.Writer) {
	switch len(args) {
	case 0:
		fmt.Fprintln(stdout, gen.GenerateSpecific(gender))
	case 1:
		amount, ok := parseAmount(args[0])
		if !ok {
			fail(stderr, "Could not parse the amount of names to be generated.")
			return
		}
		var names []namegen.Name
		var generated bool
		if gender == namegen.Male {
			names, generated = gen.GenerateManySpecific(amount, 0)
		} else {
			names, generated = gen.GenerateManySpecific(0, amount)
		}
		if generated {
			printNames(stdout, names)
		}
	default:
		fail(stderr, "Too many command arguments.")
	}
}

func runMany(gen *namegen.Generator, args []string, stdout, stderr io.Writer) {
	switch len(args) {
	case 0:
		fail(stderr, "Too few command arguments.")
	case 1:
		amount, ok := parseAmount(args[0])
		if !ok {
			fail(stderr, "Could not parse the amount of names to be generated.")
			return
		}
		if names, generated := gen.GenerateMany(amount); generated {
			printNames(stdout, names)
		}
	case 2:
		maleAmount, femaleAmount, ok := parseSplit(args, stderr)
		if !ok {
			return
		}
		if names, generated := gen.GenerateManySpecific(maleAmount, femaleAmount); generated {
			printNames(stdout, names)
		}
	default:
		fail(stderr, "Too many command arguments.")
	}
}

func runFamily(gen *namegen.Generator, args []string, stdout, stderr io.Writer) {
	switch len(args) {
	case 0:
		fail(stderr, "Too few command arguments.")
	case 1:
		children, ok := parseAmount(args[0])
		if !ok {
			fail(stderr, "Could not parse the amount of names to be generated.")
			return
		}
		printNames(stdout, gen.GenerateFamily(children))
	case 2:
		boys, girls, ok := parseSplit(args, stderr)
		if !ok {
			return
		}
		printNames(stdout, gen.GenerateFamilySpecific(boys, girls))
	default:
		fail(stderr, "Too many command arguments.")
	}
}

// parseSplit reads a male/female amount pair, reporting which side failed.
func parseSplit(args []string, stderr io.Writer) (maleAmount, femaleAmount int, ok bool) {
	maleAmount, ok = parseAmount(args[0])
	if !ok {
		fail(stderr, "Could not parse the amount of male names to be generated.")
		return 0, 0, false
	}
	femaleAmount, ok = parseAmount(args[1])
	if !ok {
		fail(stderr, "Could not parse the amount of female names to be generated.")
		return 0, 0, false
	}
	return maleAmount, femaleAmount, true
}

// parseAmount accepts non-negative integers only; negative counts are treated
// the same as unparseable input.
func parseAmount(s string) (int, bool) {
	amount, err := strconv.Atoi(s)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func printNames(w io.Writer, names []namegen.Name) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func fail(stderr io.Writer, msg string) {
	fmt.Fprintln(stderr, msg)
	printUsage(stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "\tnamemaker [amount]")
	fmt.Fprintln(w, "\tnamemaker -m|--male|-f|--female [amount]")
	fmt.Fprintln(w, "\tnamemaker -M|--many|-F|--family <amount | male_amount female_amount>")
	fmt.Fprintln(w, "\tnamemaker -h|--help")
}
