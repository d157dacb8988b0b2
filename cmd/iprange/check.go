package main

import (
	"flag"
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dnsoa/iprange"
)

// rules is the YAML rule file shape. Entries are CIDR ranges or plain
// addresses; deny entries win over allow entries. An empty allow list
// admits everything that is not denied.
type rules struct {
	Allow []string `yaml:"allow"`
	Deny  []string `yaml:"deny"`
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	rulesPath := fs.String("rules", "rules.yaml", "rules file")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fatal(fmt.Errorf("check: need at least 1 address"))
	}

	ru, err := loadRules(*rulesPath)
	if err != nil {
		fatal(err)
	}

	allow, err := parseRules(ru.Allow)
	if err != nil {
		fatal(err)
	}
	deny, err := parseRules(ru.Deny)
	if err != nil {
		fatal(err)
	}

	denied := false
	for _, arg := range fs.Args() {
		addr, err := netip.ParseAddr(arg)
		if err != nil {
			fatal(fmt.Errorf("check: invalid address %q", arg))
		}
		verdict := "allow"
		switch {
		case deny.ContainsAddr(addr):
			verdict = "deny"
		case len(ru.Allow) > 0 && !allow.ContainsAddr(addr):
			verdict = "deny"
		}
		if verdict == "deny" {
			denied = true
		}
		fmt.Printf("addr=%s verdict=%s\n", addr, verdict)
	}
	if denied {
		os.Exit(1)
	}
}

func parseRules(entries []string) (*iprange.List, error) {
	ranges := make([]iprange.AddressRange, 0, len(entries))
	for _, e := range entries {
		r, err := iprange.Parse(e)
		if err != nil {
			return nil, fmt.Errorf("check: rule %q: %w", e, err)
		}
		ranges = append(ranges, r)
	}
	return iprange.NewList(ranges), nil
}

func loadRules(path string) (*rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ru rules
	if err := yaml.Unmarshal(data, &ru); err != nil {
		return nil, fmt.Errorf("check: parse rules %s: %w", path, err)
	}
	return &ru, nil
}
