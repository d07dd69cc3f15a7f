package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/traceprint/traceprint/internal/core"
)

// promptProfile collects a target profile interactively. Optional fields may
// be skipped with an empty line; name and primary username are mandatory.
func promptProfile(in io.Reader, out io.Writer) (core.TargetProfile, error) {
	fmt.Fprintln(out, "Enter the details of the person to investigate.")
	fmt.Fprintln(out, "(Press Enter to skip optional fields)")
	fmt.Fprintln(out, strings.Repeat("-", 50))

	reader := bufio.NewScanner(in)
	readLine := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !reader.Scan() {
			if err := reader.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(reader.Text()), nil
	}

	var profile core.TargetProfile
	var err error

	if profile.Name, err = readLine("Full name"); err != nil {
		return core.TargetProfile{}, err
	}
	if profile.Name == "" {
		return core.TargetProfile{}, errors.New("target name is required")
	}

	if profile.Email, err = readLine("Email (optional)"); err != nil {
		return core.TargetProfile{}, err
	}
	if profile.Phone, err = readLine("Phone (optional)"); err != nil {
		return core.TargetProfile{}, err
	}
	if profile.Location, err = readLine("Location (optional)"); err != nil {
		return core.TargetProfile{}, err
	}
	if profile.Profession, err = readLine("Profession (optional)"); err != nil {
		return core.TargetProfile{}, err
	}

	if profile.PrimaryUsername, err = readLine("Primary username"); err != nil {
		return core.TargetProfile{}, err
	}
	if profile.PrimaryUsername == "" {
		return core.TargetProfile{}, errors.New("primary username is required")
	}

	if profile.Website, err = readLine("Website (optional)"); err != nil {
		return core.TargetProfile{}, err
	}

	return profile, nil
}
