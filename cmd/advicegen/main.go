package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/partylikeits1983/miden-client-tools/advice"
	"github.com/partylikeits1983/miden-client-tools/falcon"
	"github.com/partylikeits1983/miden-client-tools/sigfile"
)

func usage() {
	fmt.Println(`usage: advicegen -sig <signature.json> [options]

Generates the verifier advice stack for a Falcon-512 signature bundle.

Flags:
  -sig    <path>   signature bundle JSON (h_coeffs, s2_coeffs) (required)
  -out    <path>   output advice tape JSON (default: advice.json)
  -verify          run the unconstrained reference verification first
                   (requires message and nonce hex fields in the bundle)`)
	os.Exit(1)
}

func main() {
	sigPath := flag.String("sig", "", "signature bundle JSON")
	outPath := flag.String("out", "advice.json", "output advice tape JSON")
	verify := flag.Bool("verify", false, "run reference verification")
	flag.Usage = usage
	flag.Parse()

	if *sigPath == "" {
		usage()
	}

	bundle, err := sigfile.Load(*sigPath)
	if err != nil {
		log.Fatalf("load bundle: %v", err)
	}
	h, s2, err := bundle.Polynomials()
	if err != nil {
		log.Fatalf("bundle polynomials: %v", err)
	}

	if *verify {
		msg, err := hex.DecodeString(bundle.Message)
		if err != nil {
			log.Fatalf("decode message hex: %v", err)
		}
		nonce, err := hex.DecodeString(bundle.Nonce)
		if err != nil {
			log.Fatalf("decode nonce hex: %v", err)
		}
		if err := falcon.Verify(&h, &s2, msg, nonce); err != nil {
			log.Fatalf("reference verification failed: %v", err)
		}
		fmt.Println("reference verification passed")
	}

	stack := advice.GenerateAdviceStack(&h, &s2)
	if err := sigfile.SaveTape(*outPath, stack); err != nil {
		log.Fatalf("save tape: %v", err)
	}
	fmt.Printf("wrote %d advice entries to %s (challenge = %d, %d)\n",
		len(stack), *outPath, stack[0], stack[1])
}
