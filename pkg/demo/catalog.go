package demo

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"patternbook/pkg/bank"
	"patternbook/pkg/calc"
	"patternbook/pkg/errors"
	"patternbook/pkg/patterns/adapter"
	"patternbook/pkg/patterns/decorator"
	"patternbook/pkg/patterns/factory"
	"patternbook/pkg/patterns/observer"
	"patternbook/pkg/patterns/singleton"
	"patternbook/pkg/patterns/strategy"
	"patternbook/pkg/shapes"
)

// Catalog builds the full registry of teaching demos.
func Catalog() *Registry {
	r := NewRegistry()
	r.Register(Demo{Name: "calculator", Topic: TopicBasics,
		Summary: "arithmetic with error returns instead of surprises", Run: runCalculator})
	r.Register(Demo{Name: "shapes", Topic: TopicBasics,
		Summary: "polymorphism through a shared Shape interface", Run: runShapes})
	r.Register(Demo{Name: "bank", Topic: TopicConcepts,
		Summary: "encapsulation and typed errors in a PIN-guarded account", Run: runBank})
	r.Register(Demo{Name: "decorator-coffee", Topic: TopicPatterns,
		Summary: "stacking add-ons onto a coffee order", Run: runDecoratorCoffee})
	r.Register(Demo{Name: "decorator-text", Topic: TopicPatterns,
		Summary: "order-sensitive text transform chains", Run: runDecoratorText})
	r.Register(Demo{Name: "adapter", Topic: TopicPatterns,
		Summary: "wrapping a legacy gateway behind a modern interface", Run: runAdapter})
	r.Register(Demo{Name: "factory", Topic: TopicPatterns,
		Summary: "simple factory, factory method and abstract factory", Run: runFactory})
	r.Register(Demo{Name: "observer", Topic: TopicPatterns,
		Summary: "subjects broadcasting to observers and callbacks", Run: runObserver})
	r.Register(Demo{Name: "strategy", Topic: TopicPatterns,
		Summary: "swapping payment, sorting and compression algorithms", Run: runStrategy})
	r.Register(Demo{Name: "singleton", Topic: TopicPatterns,
		Summary: "one shared config and journal behind sync.Once", Run: runSingleton})
	return r
}

func runCalculator(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "12 + 30 = %g\n", calc.Add(12, 30))
	fmt.Fprintf(w, "2^10 = %g\n", calc.Power(2, 10))

	if _, err := calc.Divide(1, 0); err != nil {
		fmt.Fprintf(w, "1 / 0 -> %s\n", errors.UserMessage(err))
	}

	f, err := calc.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "5! = %g\n", f)
	fmt.Fprintf(w, "97 prime? %t\n", calc.IsPrime(97))
	return nil
}

func runShapes(ctx context.Context, w io.Writer) error {
	circle, err := shapes.NewCircle(2)
	if err != nil {
		return err
	}
	rect, err := shapes.NewRectangle(3, 4)
	if err != nil {
		return err
	}
	tri, err := shapes.NewTriangle(3, 4, 5)
	if err != nil {
		return err
	}

	var all shapes.Collection
	for _, s := range []shapes.Shape{circle, rect, tri} {
		all.Add(s)
		fmt.Fprintln(w, s.Describe())
	}
	fmt.Fprintf(w, "total area of %d shapes: %.2f\n", all.Len(), all.TotalArea())
	fmt.Fprintf(w, "largest: %s\n", all.Largest().Name())

	if _, err := shapes.NewTriangle(1, 1, 10); err != nil {
		fmt.Fprintf(w, "degenerate triangle rejected: %s\n", errors.UserMessage(err))
	}
	return nil
}

func runBank(ctx context.Context, w io.Writer) error {
	acct, err := bank.NewAccount("Ada", "1234", 100)
	if err != nil {
		return err
	}

	if err := acct.Deposit(50); err != nil {
		return err
	}
	if err := acct.Withdraw("1234", 30); err != nil {
		return err
	}

	// Failed operations leave the balance untouched.
	if err := acct.Withdraw("0000", 10); err != nil {
		fmt.Fprintf(w, "wrong PIN: %s\n", errors.UserMessage(err))
	}
	if err := acct.Withdraw("1234", 10_000); err != nil {
		var insufficient *errors.InsufficientFundsError
		if stderrors.As(err, &insufficient) {
			fmt.Fprintf(w, "overdraft blocked: wanted %.2f, have %.2f\n",
				insufficient.Requested, insufficient.Available)
		}
	}

	balance, err := acct.Balance("1234")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "final balance: %.2f\n", balance)
	return nil
}

func runDecoratorCoffee(ctx context.Context, w io.Writer) error {
	order := decorator.WithWhippedCream(decorator.WithMilk(decorator.Espresso{}))
	fmt.Fprintf(w, "order: %s ($%.2f)\n", order.Description(), order.Cost())
	order.Prepare(w)
	return nil
}

func runDecoratorText(ctx context.Context, w io.Writer) error {
	input := "go  gopher"

	squeezeFirst := decorator.Uppercase(decorator.Squeeze(decorator.Plain{}))
	caesarFirst := decorator.Uppercase(decorator.Caesar(decorator.Plain{}, 3))

	fmt.Fprintf(w, "%s: %q\n", squeezeFirst.Info(), squeezeFirst.Process(input))
	fmt.Fprintf(w, "%s: %q\n", caesarFirst.Info(), caesarFirst.Process(input))
	return nil
}

func runAdapter(ctx context.Context, w io.Writer) error {
	proc := adapter.NewProcessor(w)

	proc.SetGateway(&adapter.ModernGateway{Out: w})
	if _, err := proc.Transaction(49.99, "credit card"); err != nil {
		return err
	}

	// Same client code, legacy backend behind the adapter.
	legacy := &adapter.LegacyGateway{Out: w}
	proc.SetGateway(adapter.NewLegacyAdapter(legacy, "USD", w))
	id, err := proc.Transaction(12.50, "credit card")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "legacy transaction %s completed\n", id)
	return nil
}

func runFactory(ctx context.Context, w io.Writer) error {
	shape, err := factory.NewShape("circle", 1.5)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, shape.Describe())

	docs, err := factory.DocumentFactoryFor("pdf")
	if err != nil {
		return err
	}
	report := docs.Create("quarterly-report")
	report.Open(w)
	report.Save(w)

	ui, err := factory.UIFactoryFor("mac")
	if err != nil {
		return err
	}
	ui.NewButton("OK").Render(w)
	ui.NewCheckbox("remember me").Render(w)
	return nil
}

func runObserver(ctx context.Context, w io.Writer) error {
	agency := observer.NewNewsAgency("Daily Gopher")
	alice := &observer.Channel{Name: "alice", Out: w}
	bob := &observer.Channel{Name: "bob", Out: w}
	agency.Attach(alice)
	agency.Attach(bob)
	agency.Publish("go 1.24 released")
	agency.Detach(bob)
	agency.Publish("generics considered useful")
	fmt.Fprintf(w, "alice saw %d stories, bob saw %d\n",
		len(alice.Received()), len(bob.Received()))

	market := observer.NewStockMarket()
	desk := &observer.Display{Name: "trading desk", Out: w}
	market.Subscribe(desk)
	market.Update("GOOG", 181.50)
	market.Update("GOOG", 183.20)

	bus := observer.NewBus()
	bus.On("deploy", func(payload string) {
		fmt.Fprintf(w, "deploy hook fired: %s\n", payload)
	})
	notified := bus.Emit("deploy", "v1.2.3")
	fmt.Fprintf(w, "%d handler(s) notified\n", notified)
	return nil
}

func runStrategy(ctx context.Context, w io.Writer) error {
	var cart strategy.Cart
	cart.Add("keyboard", 80)
	cart.Add("mouse", 25)
	cart.SetPayment(strategy.CreditCard{Holder: "Ada Lovelace", Number: "4111111111111111"})
	receipt, err := cart.Checkout(w)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "receipt %s\n", receipt)

	data := []int{5, 2, 9, 1, 7}
	var sorter strategy.SortContext[int]
	sorter.SetSorter(strategy.Quick[int]{})
	algo, _ := sorter.Sort(data)
	fmt.Fprintf(w, "sorted with %s: %v\n", algo, data)

	zip := strategy.Zip()
	packed := zip.Compress("design patterns")
	fmt.Fprintf(w, "%s -> %s -> %s\n", "design patterns", packed, zip.Decompress(packed))
	return nil
}

func runSingleton(ctx context.Context, w io.Writer) error {
	first := singleton.Shared()
	second := singleton.Shared()
	fmt.Fprintf(w, "same instance: %t\n", first == second)
	fmt.Fprintf(w, "environment %s -> %s\n", first.Environment(), first.ProfilePath())

	journal := singleton.SharedJournal()
	before := journal.Len()
	journal.Info("singleton demo ran")
	fmt.Fprintf(w, "journal grew from %d to %d entries\n", before, journal.Len())
	return nil
}
