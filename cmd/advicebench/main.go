package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/partylikeits1983/miden-client-tools/advice"
	"github.com/partylikeits1983/miden-client-tools/felt"
	"github.com/partylikeits1983/miden-client-tools/poly"
	"github.com/partylikeits1983/miden-client-tools/prof"
)

// randomFalconPoly fills a polynomial with Falcon-range coefficients
// drawn from the keyed PRNG.
func randomFalconPoly(prng utils.PRNG) poly.Polynomial {
	var p poly.Polynomial
	buf := make([]byte, 2)
	for i := 0; i < poly.N; i++ {
		if _, err := prng.Read(buf); err != nil {
			log.Fatalf("prng read: %v", err)
		}
		t := uint64(buf[0])<<8 | uint64(buf[1])
		p[i] = felt.New(t % 12289)
	}
	return p
}

func main() {
	trials := flag.Int("trials", 20, "number of advice generations to time")
	seed := flag.String("seed", "advicebench", "PRNG seed key")
	htmlOut := flag.String("html", "advice_bench.html", "output chart HTML ('' disables)")
	flag.Parse()

	prng, err := utils.NewKeyedPRNG([]byte(*seed))
	if err != nil {
		log.Fatalf("keyed prng: %v", err)
	}

	convMS := make([]float64, 0, *trials)
	parMS := make([]float64, 0, *trials)
	fullMS := make([]float64, 0, *trials)
	labels := make([]string, 0, *trials)

	for i := 0; i < *trials; i++ {
		h := randomFalconPoly(prng)
		s2 := randomFalconPoly(prng)

		start := time.Now()
		serial := poly.Convolve(&h, &s2)
		convMS = append(convMS, float64(time.Since(start).Microseconds())/1e3)
		prof.Track(start, "convolve")

		start = time.Now()
		parallel := poly.ConvolveParallel(&h, &s2)
		parMS = append(parMS, float64(time.Since(start).Microseconds())/1e3)
		prof.Track(start, "convolve-parallel")

		if serial != parallel {
			log.Fatalf("trial %d: parallel convolution diverged from serial", i)
		}

		start = time.Now()
		stack := advice.GenerateAdviceStack(&h, &s2)
		fullMS = append(fullMS, float64(time.Since(start).Microseconds())/1e3)
		prof.Track(start, "generate-advice")

		if len(stack) != advice.StackLen {
			log.Fatalf("trial %d: stack length %d, want %d", i, len(stack), advice.StackLen)
		}
		labels = append(labels, fmt.Sprintf("%d", i))
	}

	prof.Report(os.Stdout, prof.SnapshotAndReset())

	if *htmlOut == "" {
		return
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Advice generation timings",
			Subtitle: fmt.Sprintf("N=%d, %d trials", poly.N, *trials),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "trial"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	toLineData := func(vals []float64) []opts.LineData {
		items := make([]opts.LineData, len(vals))
		for i, v := range vals {
			items[i] = opts.LineData{Value: v}
		}
		return items
	}
	line.SetXAxis(labels).
		AddSeries("convolve", toLineData(convMS)).
		AddSeries("convolve-parallel", toLineData(parMS)).
		AddSeries("generate-advice", toLineData(fullMS))

	f, err := os.Create(*htmlOut)
	if err != nil {
		log.Fatalf("create %s: %v", *htmlOut, err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	fmt.Printf("wrote timing chart to %s\n", *htmlOut)
}
