package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/Minefut_Go/internal/engine"
	"github.com/osse101/Minefut_Go/internal/naming"
)

func newRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []simple{
		{name: "status", usage: "status", desc: "Show profile, balance and active pass", run: runStatus},
		{name: "collection", usage: "collection", desc: "List owned cards", run: runCollection},
		{name: "grant", usage: "grant <card>...", desc: "Add cards to the collection", minArgs: 1, run: runGrant},
		{name: "credit", usage: "credit <amount>", desc: "Add minecoins", minArgs: 1, run: runCredit},
		{name: "debit", usage: "debit <amount>", desc: "Spend minecoins", minArgs: 1, run: runDebit},
		{name: "add-xp", usage: "add-xp <amount>", desc: "Add experience", minArgs: 1, run: runAddXP},
		{name: "name", usage: "name <display name>", desc: "Set the profile name", minArgs: 1, run: runName},
		{name: "packs", usage: "packs", desc: "List shop packs", run: runPacks},
		{name: "open-pack", usage: "open-pack <pack>", desc: "Buy and open a pack", minArgs: 1, run: runOpenPack},
		{name: "challenges", usage: "challenges", desc: "List SBC challenges", run: runChallenges},
		{name: "submit", usage: "submit <challenge> <card>...", desc: "Submit a squad to an SBC", minArgs: 2, run: runSubmit},
		{name: "tasks", usage: "tasks [group]", desc: "List Défi tasks", run: runTasks},
		{name: "claim-task", usage: "claim-task <task>", desc: "Claim a Défi reward", minArgs: 1, run: runClaimTask},
		{name: "passes", usage: "passes", desc: "List season passes", run: runPasses},
		{name: "pass-rewards", usage: "pass-rewards <pass>", desc: "Show a pass reward track", minArgs: 1, run: runPassRewards},
		{name: "set-pass", usage: "set-pass <pass>", desc: "Switch the active season pass", minArgs: 1, run: runSetPass},
		{name: "claim-pass", usage: "claim-pass <pass> <level>", desc: "Claim a season pass level", minArgs: 2, run: runClaimPass},
		{name: "daily", usage: "daily", desc: "Show the daily reward calendar", run: runDaily},
		{name: "claim-daily", usage: "claim-daily", desc: "Claim today's daily reward", run: runClaimDaily},
		{name: "reset", usage: "reset --yes", desc: "Delete all progress", minArgs: 1, run: runReset},
	} {
		r.Register(c)
	}
	return r
}

func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return n, nil
}

func runStatus(ctx context.Context, eng *engine.Engine, _ []string) error {
	p, err := eng.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s  level %d (%d/%d xp)\n", p.Name, p.Level.Level, p.Level.InLevel, p.Level.Needed)
	fmt.Printf("Balance: %d minecoins\n", p.Balance)
	fmt.Printf("Cards: %d\n", p.Cards)
	fmt.Printf("Pass %s: level %d (%d/%d xp)\n", p.ActivePass, p.PassLevel.Level, p.PassLevel.InLevel, p.PassLevel.Needed)
	return nil
}

func runCollection(ctx context.Context, eng *engine.Engine, _ []string) error {
	owned, err := eng.Collection(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(owned))
	for n := range owned {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return naming.Fold(names[i]) < naming.Fold(names[j]) })
	for _, n := range names {
		fmt.Printf("%3d× %s\n", owned[n], n)
	}
	return nil
}

func runGrant(ctx context.Context, eng *engine.Engine, args []string) error {
	owned, err := eng.GrantCards(ctx, args)
	if err != nil {
		return err
	}
	for _, n := range args {
		fmt.Printf("+1 %s (%d)\n", n, owned[n])
	}
	return nil
}

func runCredit(ctx context.Context, eng *engine.Engine, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	balance, err := eng.Credit(ctx, amount)
	if err != nil {
		return err
	}
	fmt.Printf("Balance: %d minecoins\n", balance)
	return nil
}

func runDebit(ctx context.Context, eng *engine.Engine, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	balance, err := eng.Debit(ctx, amount)
	if err != nil {
		return err
	}
	fmt.Printf("Balance: %d minecoins\n", balance)
	return nil
}

func runAddXP(ctx context.Context, eng *engine.Engine, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	total, err := eng.AddXP(ctx, amount)
	if err != nil {
		return err
	}
	fmt.Printf("XP: %d\n", total)
	return nil
}

func runName(ctx context.Context, eng *engine.Engine, args []string) error {
	name, err := eng.SetName(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Name: %s\n", name)
	return nil
}

func runPacks(_ context.Context, eng *engine.Engine, _ []string) error {
	for _, p := range eng.Packs() {
		fmt.Printf("%-16s %d cards  %d minecoins\n", p.Name, p.Count, p.Price)
	}
	return nil
}

func runOpenPack(ctx context.Context, eng *engine.Engine, args []string) error {
	opening, err := eng.OpenPack(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, c := range opening.Cards {
		fmt.Printf("  %s\n", naming.DisplayCard(c))
	}
	fmt.Printf("Balance: %d minecoins\n", opening.Balance)
	return nil
}

func runChallenges(ctx context.Context, eng *engine.Engine, _ []string) error {
	list, err := eng.Challenges(ctx)
	if err != nil {
		return err
	}
	for _, st := range list {
		mark := " "
		if st.Completed {
			mark = "✓"
		}
		fmt.Printf("[%s] %-22s %s\n", mark, st.Challenge.ID, st.Challenge.Description)
	}
	return nil
}

func runSubmit(ctx context.Context, eng *engine.Engine, args []string) error {
	res, err := eng.SubmitChallenge(ctx, args[1:], args[0])
	if err != nil {
		return err
	}
	fmt.Printf("SBC %s completed\n", res.ChallengeID)
	for _, c := range res.Cards {
		fmt.Printf("  %s\n", naming.DisplayCard(c))
	}
	for _, b := range res.Bundles {
		fmt.Printf("Bonus %s: %s\n", b.BundleID, naming.DisplayCard(b.Card))
	}
	return nil
}

func runTasks(ctx context.Context, eng *engine.Engine, args []string) error {
	group := strings.Join(args, " ")
	list, err := eng.Tasks(ctx, group)
	if err != nil {
		return err
	}
	for _, st := range list {
		mark := " "
		switch {
		case st.Claimed:
			mark = "✓"
		case st.Claimable:
			mark = "!"
		}
		fmt.Printf("[%s] %-26s %d/%d  %s\n", mark, st.Task.ID, st.Progress, st.Task.Target, st.Task.Reward)
	}
	return nil
}

func runClaimTask(ctx context.Context, eng *engine.Engine, args []string) error {
	res, err := eng.ClaimTask(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Reward: %s\n", res.Reward)
	if res.Card != nil {
		fmt.Printf("Card: %s\n", naming.DisplayCard(*res.Card))
	}
	return nil
}

func runPasses(ctx context.Context, eng *engine.Engine, _ []string) error {
	passes, err := eng.Passes(ctx)
	if err != nil {
		return err
	}
	for _, p := range passes {
		switch {
		case p.Active:
			fmt.Printf("* %-10s %s\n", p.ID, p.Name)
		case p.Unlocked:
			fmt.Printf("  %-10s %s\n", p.ID, p.Name)
		default:
			fmt.Printf("  %-10s %s (%s)\n", p.ID, p.Name, p.UnlockHint)
		}
	}
	return nil
}

func runPassRewards(ctx context.Context, eng *engine.Engine, args []string) error {
	rows, err := eng.PassRewards(ctx, args[0])
	if err != nil {
		return err
	}
	for _, r := range rows {
		mark := " "
		switch {
		case r.Claimed:
			mark = "✓"
		case r.Claimable:
			mark = "!"
		}
		fmt.Printf("[%s] %2d  %s\n", mark, r.Level, r.Reward)
	}
	return nil
}

func runSetPass(ctx context.Context, eng *engine.Engine, args []string) error {
	if err := eng.SetActivePass(ctx, args[0]); err != nil {
		return err
	}
	lp, err := eng.PassLevel(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Pass %s active, level %d\n", args[0], lp.Level)
	return nil
}

func runClaimPass(ctx context.Context, eng *engine.Engine, args []string) error {
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid level %q", args[1])
	}
	r, err := eng.ClaimPassLevel(ctx, args[0], level)
	if err != nil {
		return err
	}
	fmt.Printf("Reward: %s\n", r)
	return nil
}

func runDaily(ctx context.Context, eng *engine.Engine, _ []string) error {
	st, err := eng.DailyStatus(ctx)
	if err != nil {
		return err
	}
	claimedUpTo := st.NextDay - 1
	if st.ClaimedToday {
		claimedUpTo = st.DayIndex
	}
	for _, s := range eng.DailySlots() {
		mark := " "
		switch {
		case s.Day <= claimedUpTo:
			mark = "✓"
		case s.Day == st.NextDay:
			mark = "!"
		}
		fmt.Printf("[%s] D%-2d %s\n", mark, s.Day, s.Reward)
	}
	fmt.Printf("Cycles completed: %d\n", st.CyclesCompleted)
	return nil
}

func runClaimDaily(ctx context.Context, eng *engine.Engine, _ []string) error {
	res, err := eng.ClaimDaily(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Day %d: %s\n", res.Day, res.Reward)
	return nil
}

func runReset(ctx context.Context, eng *engine.Engine, args []string) error {
	if args[0] != "--yes" {
		return fmt.Errorf("reset deletes all progress, confirm with: minefut reset --yes")
	}
	report, err := eng.Reset(ctx)
	for _, r := range report {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Printf("%-22s %s\n", r.Key, status)
	}
	return err
}
