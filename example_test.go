package onekit_test

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"yoth.dev/onekit-go"
	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/datefmt"
	"yoth.dev/onekit-go/durationfmt"
	"yoth.dev/onekit-go/internal/server"
	"yoth.dev/onekit-go/locale"
	"yoth.dev/onekit-go/wire"
)

func ExampleDates_Format() {
	d := onekit.On(calendar.New(calendar.WithLocation(time.UTC), calendar.WithLocale(locale.EnGB)))
	t := time.Date(2020, time.June, 20, 21, 5, 9, 0, time.UTC)

	fmt.Println(d.Format(t, ""))
	fmt.Println(d.FormatStyle(t, datefmt.Medium, datefmt.Short))
	fmt.Println(d.FormatOptions(t, datefmt.Locale(locale.EnUS), datefmt.DateFormatTemplate("yMMMMd")))
	// Output:
	// 20/06/2020
	// 20 Jun 2020, 21:05
	// June 20, 2020
}

func ExampleDates_QuantitiesTo() {
	d := onekit.On(calendar.New(calendar.WithLocation(time.UTC), calendar.WithLocale(locale.EnUS)))
	start := time.Date(2020, time.June, 20, 12, 0, 0, 0, time.UTC)

	s, _ := d.QuantitiesTo(start, start.Add(76*time.Hour),
		durationfmt.UnitsStyle(durationfmt.Full),
		durationfmt.MaximumUnitCount(2),
	)
	fmt.Println(s)
	// Output: 3 days, 4 hours
}

func ExampleClient() {
	s := server.New(server.WithWorkers(2), server.WithEnv(wire.Env{Locale: locale.EnUS, Location: time.UTC}))
	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()
	defer func() {
		cancel()
		<-done
	}()

	client := onekit.NewClient(
		onekit.WithBaseURL("http://onekit"),
		onekit.WithHTTPClient(&fasthttp.Client{
			Dial: func(string) (net.Conn, error) { return ln.Dial() },
		}),
	)
	defer client.Close()

	seconds := 90.0
	results, err := client.Batch(context.Background(), []wire.BatchItem{
		{Duration: &wire.DurationRequest{Seconds: &seconds, Options: wire.DurationOptions{Style: "abbreviated"}}},
		{Color: &wire.ColorRequest{Hex: "#E57"}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(results[0].Text)
	fmt.Println(results[1].Color.Hex)
	// Output:
	// 1m 30s
	// #EE5577
}
