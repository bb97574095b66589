// main.go - Kyber KEM demo and benchmark front-end.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	kyber "github.com/rahulsoni0361/pqc-kyber-embedded"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func paramSet(name string) (*kyber.ParameterSet, error) {
	switch name {
	case "512":
		return kyber.Kyber512, nil
	case "768":
		return kyber.Kyber768, nil
	case "1024":
		return kyber.Kyber1024, nil
	default:
		return nil, fmt.Errorf("unknown parameter set: %q", name)
	}
}

func main() {
	app := &cli.App{
		Name:  "kyber-demo",
		Usage: "Kyber (ML-KEM) key encapsulation demo and benchmark",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "params",
				Aliases: []string{"p"},
				Value:   "512",
				Usage:   "parameter set (512, 768 or 1024)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "print parameter set sizes",
				Action: cmdInfo,
			},
			{
				Name:   "roundtrip",
				Usage:  "run a single keygen/encaps/decaps round trip",
				Action: cmdRoundTrip,
			},
			{
				Name:  "bench",
				Usage: "benchmark keygen/encaps/decaps",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "iterations",
						Aliases: []string{"n"},
						Value:   100,
						Usage:   "number of iterations",
					},
				},
				Action: cmdBench,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("kyber-demo")
	}
}

func cmdInfo(c *cli.Context) error {
	p, err := paramSet(c.String("params"))
	if err != nil {
		return err
	}

	log.Info().
		Str("params", p.Name()).
		Int("publicKey", p.PublicKeySize()).
		Int("privateKey", p.PrivateKeySize()).
		Int("cipherText", p.CipherTextSize()).
		Int("sharedSecret", kyber.SymSize).
		Msg("byte sizes")

	return nil
}

func cmdRoundTrip(c *cli.Context) error {
	p, err := paramSet(c.String("params"))
	if err != nil {
		return err
	}

	pk, sk, err := p.GenerateKeyPair(rand.Reader)
	if err != nil {
		return err
	}
	log.Info().Str("params", p.Name()).Msg("generated key pair")

	ct, ss1, err := pk.KEMEncrypt(rand.Reader)
	if err != nil {
		return err
	}
	log.Info().Int("cipherText", len(ct)).Msg("encapsulated")

	ss2 := sk.KEMDecrypt(ct)
	if !bytes.Equal(ss1, ss2) {
		return fmt.Errorf("shared secrets do not match")
	}

	log.Info().Str("sharedSecret", hex.EncodeToString(ss1)).Msg("round trip ok")

	return nil
}

func cmdBench(c *cli.Context) error {
	p, err := paramSet(c.String("params"))
	if err != nil {
		return err
	}
	iters := c.Int("iterations")

	keyGen := make([]float64, 0, iters)
	encaps := make([]float64, 0, iters)
	decaps := make([]float64, 0, iters)

	for i := 0; i < iters; i++ {
		start := time.Now()
		pk, sk, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			return err
		}
		keyGen = append(keyGen, float64(time.Since(start).Microseconds()))

		start = time.Now()
		ct, ss1, err := pk.KEMEncrypt(rand.Reader)
		if err != nil {
			return err
		}
		encaps = append(encaps, float64(time.Since(start).Microseconds()))

		start = time.Now()
		ss2 := sk.KEMDecrypt(ct)
		decaps = append(decaps, float64(time.Since(start).Microseconds()))

		if !bytes.Equal(ss1, ss2) {
			return fmt.Errorf("shared secrets do not match at iteration %d", i)
		}
	}

	for _, v := range []struct {
		name    string
		samples []float64
	}{
		{"GenerateKeyPair", keyGen},
		{"KEMEncrypt", encaps},
		{"KEMDecrypt", decaps},
	} {
		mean, _ := stats.Mean(v.samples)
		median, _ := stats.Median(v.samples)
		p95, _ := stats.Percentile(v.samples, 95)

		log.Info().
			Str("params", p.Name()).
			Str("op", v.name).
			Int("iterations", iters).
			Float64("meanUs", mean).
			Float64("medianUs", median).
			Float64("p95Us", p95).
			Msg("benchmark")
	}

	return nil
}
