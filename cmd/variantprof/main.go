// Command variantprof drives a replacement loop over a Variant and writes a
// heap profile, optionally serving net/http/pprof while it runs.
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/variant"
)

type record struct {
	Val      []string
	Integers []int16
	Float6   []float64
}

var (
	iterations = flag.Int("n", 10000, "number of replacement rounds")
	memProfile = flag.String("memprofile", "mem.prof", "heap profile output path")
	pprofAddr  = flag.String("pprof", "", "serve net/http/pprof on this address and wait")
	wait       = flag.Duration("wait", 5*time.Minute, "how long to keep serving pprof after the run")
)

func main() {
	log.SetPrefix("variantprof: ")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	f, err := os.Create(*memProfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	c := variant.Of(variant.TypeOf[int](), variant.TypeOf[string](), variant.TypeOf[record](), variant.TypeOf[[4]float64]())
	v, err := variant.New(c, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	z := record{
		Val:      []string{"azerty", "hello", "world", "random"},
		Integers: []int16{100, 250, 300},
		Float6:   []float64{100.5, 165.63, 153.5},
	}
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		if _, err := variant.ChangeAndReturning[int](v, z); err != nil {
			log.Fatal(err)
		}
		if _, err := variant.ChangeAndReturning[record](v, [4]float64{float64(i)}); err != nil {
			log.Fatal(err)
		}
		if _, err := variant.ChangeAndReturning[[4]float64](v, "String"); err != nil {
			log.Fatal(err)
		}
		if _, err := variant.ChangeAndReturning[string](v, i); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("%d rounds in %v", *iterations, time.Since(start))

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
	if *pprofAddr != "" {
		time.Sleep(*wait)
	}
}
