package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/khaudio/sampleconv"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-tone", flag.ContinueOnError)

	output := flagSet.String("output", "output.raw", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bits := flagSet.Int("bits", 16, "sample bit depth")
	unsigned := flagSet.Bool("unsigned", false, "use unsigned (offset-binary) sample codes")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	depth, err := sampleconv.NewDepth(*bits, !*unsigned)
	if err != nil {
		return fmt.Errorf("bit depth %d: %w", *bits, err)
	}

	log.Printf("generating a %f sec %d-bit tone at %f hz", *length, *bits, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	out := bufio.NewWriter(file)
	bytesPerSample := (*bits + 7) / 8
	numSamples := int(float64(*rate) * *length)

	for i := 0; i < numSamples; i++ {
		fv := math.Sin(float64(i) / float64(*rate) * *frequency * 2 * math.Pi)

		code := depth.FloatToInt(sampleconv.Clip(fv))

		// Little-endian, depth rounded up to whole bytes.
		for b := 0; b < bytesPerSample; b++ {
			err := out.WriteByte(byte(code >> (8 * b)))
			if err != nil {
				return err
			}
		}
	}

	return out.Flush()
}
