package sievego_test

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/sievego"
)

func Example() {
	ctx := context.Background()

	table, err := sievego.Sieve(ctx, 30)
	if err != nil {
		fmt.Println(err)
		return
	}

	p := sievego.NewPrinter(func(o *sievego.PrinterOptions) {
		o.LineWidth = 5
		o.Separator = ", "
	})
	if err := p.Print(os.Stdout, table); err != nil {
		fmt.Println(err)
	}

	// Output:
	// 2, 3, 5, 7, 11
	// 13, 17, 19, 23, 29
}

func ExampleSieve() {
	table, err := sievego.Sieve(context.Background(), 1_000_000,
		sievego.WithStrategy(sievego.StrategyOuter),
		sievego.WithWorkers(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(table.Count())
	// Output:
	// 78498
}

func ExampleTable_IsPrime() {
	table, _ := sievego.Sieve(context.Background(), 100)

	fmt.Println(table.IsPrime(97))
	fmt.Println(table.IsPrime(99))
	// Output:
	// true
	// false
}
