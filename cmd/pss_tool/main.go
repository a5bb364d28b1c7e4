package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LdDl/rsapss-api/pss"
	"golang.org/x/term"
)

// Exit codes of the verify command
const (
	exitValid     = 0
	exitInvalid   = 1
	exitMalformed = 2
)

// env is the process surroundings, swapped out in tests
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// reports whether stdin / stdout are attached to a terminal
	stdinTTY  bool
	stdoutTTY bool
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	e := env{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
	os.Exit(run(os.Args[1:], e))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  keygen   generate an RSA-2048 key pair (PKCS#8 / SubjectPublicKeyInfo PEM)\n")
	fmt.Fprintf(w, "  sign     hash a file with SHA-256 and sign it with RSA-PSS\n")
	fmt.Fprintf(w, "  verify   verify a hex signature against a hex hash\n")
	fmt.Fprintf(w, "\nExample:\n")
	fmt.Fprintf(w, "  %s keygen -o mykey\n", os.Args[0])
	fmt.Fprintf(w, "  %s sign -key mykey_private.pem -o document document.pdf\n", os.Args[0])
	fmt.Fprintf(w, "  %s verify -key mykey_public.pem -sig document.sig -hash document.hash\n", os.Args[0])
}

func run(args []string, e env) int {
	if len(args) < 1 {
		usage(e.stderr)
		return exitMalformed
	}

	var err error
	switch args[0] {
	case "keygen":
		err = runKeygen(args[1:], e)
	case "sign":
		err = runSign(args[1:], e)
	case "verify":
		return runVerify(args[1:], e)
	case "-h", "-help", "--help", "help":
		usage(e.stdout)
		return exitValid
	default:
		usage(e.stderr)
		return exitMalformed
	}
	if err != nil {
		slog.Error("command failed", "command", args[0], "error", err)
		return exitInvalid
	}
	return exitValid
}

func runKeygen(args []string, e env) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	var output string
	var force bool
	fs.StringVar(&output, "output", "", "Output file prefix, writes <prefix>_private.pem and <prefix>_public.pem")
	fs.StringVar(&output, "o", "", "Output file prefix (shorthand)")
	fs.BoolVar(&force, "force", false, "Print the private key even when stdout is a terminal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" && e.stdoutTTY && !force {
		return errors.New("refusing to print a private key to a terminal, use -o <prefix> or -force")
	}

	kp, err := pss.GenerateKeyPair()
	if err != nil {
		return err
	}

	if output == "" {
		_, err = e.stdout.Write(append(kp.PrivateKey, kp.PublicKey...))
		return err
	}

	privFile := output + "_private.pem"
	if err := os.WriteFile(privFile, kp.PrivateKey, 0600); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}
	pubFile := output + "_public.pem"
	if err := os.WriteFile(pubFile, kp.PublicKey, 0644); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}
	slog.Info("key pair saved", "private", privFile, "public", pubFile)
	return nil
}

func runSign(args []string, e env) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	var keyPath string
	var output string
	fs.StringVar(&keyPath, "key", "", "PKCS#8 PEM private key file, \"-\" reads stdin")
	fs.StringVar(&output, "output", "", "Output file prefix, writes <prefix>.sig and <prefix>.hash")
	fs.StringVar(&output, "o", "", "Output file prefix (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if keyPath == "" || fs.NArg() != 1 {
		return errors.New("sign needs -key and exactly one input file")
	}

	keyPEM, err := readKey(keyPath, e)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	res, err := pss.SignDigest(data, keyPEM)
	if err != nil {
		return err
	}
	sigHex := hex.EncodeToString(res.Signature)
	hashHex := hex.EncodeToString(res.Hash)

	if output == "" {
		return json.NewEncoder(e.stdout).Encode(map[string]string{
			"signature": sigHex,
			"hash":      hashHex,
		})
	}

	if err := os.WriteFile(output+".sig", []byte(sigHex), 0644); err != nil {
		return fmt.Errorf("failed to save signature: %w", err)
	}
	if err := os.WriteFile(output+".hash", []byte(hashHex), 0644); err != nil {
		return fmt.Errorf("failed to save hash: %w", err)
	}
	slog.Info("file signed", "input", fs.Arg(0), "hash", hashHex, "signature", output+".sig")
	return nil
}

func runVerify(args []string, e env) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	var keyPath, sigPath, hashPath string
	fs.StringVar(&keyPath, "key", "", "PEM public key file, \"-\" reads stdin")
	fs.StringVar(&sigPath, "sig", "", "File with the hex encoded signature")
	fs.StringVar(&hashPath, "hash", "", "File with the hex encoded SHA-256 hash")
	if err := fs.Parse(args); err != nil {
		return exitMalformed
	}
	if keyPath == "" || sigPath == "" || hashPath == "" {
		slog.Error("verify needs -key, -sig and -hash")
		return exitMalformed
	}

	keyPEM, err := readKey(keyPath, e)
	if err != nil {
		slog.Error("failed to read key", "error", err)
		return exitMalformed
	}
	sigHex, err := os.ReadFile(sigPath)
	if err != nil {
		slog.Error("failed to read signature", "error", err)
		return exitMalformed
	}
	hashHex, err := os.ReadFile(hashPath)
	if err != nil {
		slog.Error("failed to read hash", "error", err)
		return exitMalformed
	}

	outcome, err := pss.VerifyHex(sigHex, hashHex, keyPEM)
	if err != nil {
		slog.Error("verification failed", "error", err)
		fmt.Fprintln(e.stdout, outcome.String())
		return exitMalformed
	}
	fmt.Fprintln(e.stdout, outcome.String())
	if outcome != pss.Valid {
		return exitInvalid
	}
	return exitValid
}

func readKey(path string, e env) ([]byte, error) {
	if path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
		return data, nil
	}
	if e.stdinTTY {
		fmt.Fprintln(e.stderr, "Paste PEM key, finish with Ctrl-D:")
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read key from stdin: %w", err)
	}
	return data, nil
}
