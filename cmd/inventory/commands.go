// cmd/inventory/commands.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
	"github.com/ammerola/inventory-catalog/internal/workers"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, a *app, out io.Writer, args []string) error
}

var errUsage = errors.New("usage")

func commands() []command {
	return []command{
		{"list", "list all products", cmdList},
		{"show", "-id N: show one product", cmdShow},
		{"add", "-name -supplier -phone -price -quantity: add a product", cmdAdd},
		{"sample", "insert the sample product", cmdSample},
		{"sell", "-id N: sell one unit", cmdSell},
		{"edit", "-id N [-name -supplier -phone -price -quantity]: change the given fields", cmdEdit},
		{"delete", "-id N: delete a product", cmdDelete},
		{"delete-all", "delete every product", cmdDeleteAll},
		{"export", "[-o file.xlsx] [-async]: write the catalog to a spreadsheet", cmdExport},
		{"import", "-i file.xlsx [-async]: insert the rows of a spreadsheet", cmdImport},
		{"type", "-uri URI: print the content type of a URI", cmdType},
		{"watch", "read commands from stdin and print change notifications", cmdWatch},
		{"recreate", "-yes: drop and recreate the schema", cmdRecreate},
		{"status", "print schema version, product count and connection health", cmdStatus},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func dispatch(ctx context.Context, a *app, out io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	c, ok := lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return c.run(logger.WithOperation(ctx, c.name), a, out, args[1:])
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func requireID(fs *flag.FlagSet, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s needs -id", errUsage, fs.Name())
	}
	return nil
}

func printProducts(out io.Writer, products []domain.Product) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSUPPLIER\tPHONE\tPRICE\tQTY")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			p.ID, p.Name, p.SupplierName, p.SupplierPhone, p.DisplayPrice(), p.Quantity)
	}
	tw.Flush()
}

func cmdList(ctx context.Context, a *app, out io.Writer, args []string) error {
	if err := newFlagSet("list", out).Parse(args); err != nil {
		return err
	}
	products, err := a.catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(out, "catalog is empty")
		return nil
	}
	printProducts(out, products)
	return nil
}

func cmdShow(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("show", out)
	id := fs.Int64("id", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, *id); err != nil {
		return err
	}

	p, err := a.catalog.Product(ctx, *id)
	if err != nil {
		return err
	}
	printProducts(out, []domain.Product{*p})
	fmt.Fprintln(out, a.provider.Contract().ItemURI(p.ID))
	return nil
}

// productFlags registers the editable fields on fs.
type productFlags struct {
	name, supplier, phone, price *string
	quantity                     *int64
}

func registerProductFlags(fs *flag.FlagSet) productFlags {
	return productFlags{
		name:     fs.String("name", "", "product name"),
		supplier: fs.String("supplier", "", "supplier name"),
		phone:    fs.String("phone", "", "supplier phone"),
		price:    fs.String("price", "", "price, e.g. 12.50"),
		quantity: fs.Int64("quantity", 0, "units in stock"),
	}
}

// payload builds a payload from the flags that were set on the command
// line, so unset fields stay absent.
func (f productFlags) payload(fs *flag.FlagSet) (domain.Payload, error) {
	var (
		p   domain.Payload
		err error
	)
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			p.Name = domain.Set(*f.name)
		case "supplier":
			p.SupplierName = domain.Set(*f.supplier)
		case "phone":
			p.SupplierPhone = domain.Set(*f.phone)
		case "price":
			var price int64
			if price, err = domain.ParsePrice(*f.price); err == nil {
				p.Price = domain.Set(price)
			}
		case "quantity":
			p.Quantity = domain.Set(*f.quantity)
		}
	})
	return p, err
}

func cmdAdd(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("add", out)
	fields := registerProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	values, err := fields.payload(fs)
	if err != nil {
		return err
	}
	id, err := a.catalog.Save(ctx, 0, values)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, a.provider.Contract().ItemURI(id))
	return nil
}

func cmdSample(ctx context.Context, a *app, out io.Writer, args []string) error {
	if err := newFlagSet("sample", out).Parse(args); err != nil {
		return err
	}
	uri, err := a.catalog.AddSample(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, uri)
	return nil
}

func cmdSell(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("sell", out)
	id := fs.Int64("id", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, *id); err != nil {
		return err
	}

	left, err := a.catalog.Sell(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sold 1, %d left\n", left)
	return nil
}

func cmdEdit(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("edit", out)
	id := fs.Int64("id", 0, "product id")
	fields := registerProductFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, *id); err != nil {
		return err
	}

	values, err := fields.payload(fs)
	if err != nil {
		return err
	}
	if values.IsEmpty() {
		fmt.Fprintln(out, "nothing to change")
		return nil
	}
	if _, err := a.catalog.Save(ctx, *id, values); err != nil {
		return err
	}
	fmt.Fprintf(out, "updated %s\n", a.provider.Contract().ItemURI(*id))
	return nil
}

func cmdDelete(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("delete", out)
	id := fs.Int64("id", 0, "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, *id); err != nil {
		return err
	}

	n, err := a.catalog.Delete(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %d\n", n)
	return nil
}

func cmdDeleteAll(ctx context.Context, a *app, out io.Writer, args []string) error {
	if err := newFlagSet("delete-all", out).Parse(args); err != nil {
		return err
	}
	n, err := a.catalog.DeleteAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %d\n", n)
	return nil
}

func cmdExport(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("export", out)
	path := fs.String("o", "", "output file (default: a dated file in the export directory)")
	async := fs.Bool("async", false, "run as a background job")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		*path = filepath.Join(a.cfg.Export.Dir, "inventory-"+time.Now().Format("20060102-150405")+".xlsx")
	}

	if *async {
		task, jobID, err := workers.NewExportTask(*path)
		if err != nil {
			return err
		}
		if _, err := a.enqueue(ctx, task); err != nil {
			return fmt.Errorf("failed to enqueue export: %w", err)
		}
		fmt.Fprintf(out, "export queued as job %s\n", jobID)
		return nil
	}

	f, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *path, err)
	}
	n, err := a.catalog.Export(ctx, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "exported %d products to %s\n", n, *path)
	return nil
}

func cmdImport(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("import", out)
	path := fs.String("i", "", "input file")
	async := fs.Bool("async", false, "run as a background job")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: import needs -i", errUsage)
	}

	if *async {
		task, jobID, err := workers.NewImportTask(*path, false)
		if err != nil {
			return err
		}
		if _, err := a.enqueue(ctx, task); err != nil {
			return fmt.Errorf("failed to enqueue import: %w", err)
		}
		fmt.Fprintf(out, "import queued as job %s\n", jobID)
		return nil
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	result, err := a.catalog.Import(ctx, f, info.Size())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "inserted %d, skipped %d\n", result.Inserted, result.Skipped)
	for _, msg := range result.Errors {
		fmt.Fprintf(out, "  %s\n", msg)
	}
	return nil
}

func cmdType(_ context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("type", out)
	uri := fs.String("uri", "", "content URI")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uri == "" {
		*uri = a.provider.Contract().CollectionURI()
	}

	typ, err := a.provider.TypeOf(*uri)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, typ)
	return nil
}

// cmdWatch runs commands read from in one per line and prints every change
// notification raised on the collection while they run.
func cmdWatch(ctx context.Context, a *app, out io.Writer, args []string) error {
	return watch(ctx, a, os.Stdin, out, args)
}

func watch(ctx context.Context, a *app, in io.Reader, out io.Writer, args []string) error {
	if err := newFlagSet("watch", out).Parse(args); err != nil {
		return err
	}

	var mu lockedWriter
	mu.w = out

	unregister := a.notifier.Register(a.provider.Contract().CollectionURI(),
		domain.ObserverFunc(func(uri string) {
			mu.printf("changed: %s\n", uri)
		}))
	defer unregister()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "watch" || fields[0] == "quit" || fields[0] == "exit" {
			if fields[0] == "watch" {
				mu.printf("already watching\n")
				continue
			}
			return nil
		}

		if err := dispatch(ctx, a, &mu, fields); err != nil {
			if errors.Is(err, domain.ErrInternal) {
				return err
			}
			mu.printf("error: %v\n", err)
		}
	}
	return scanner.Err()
}

func cmdRecreate(ctx context.Context, a *app, out io.Writer, args []string) error {
	fs := newFlagSet("recreate", out)
	yes := fs.Bool("yes", false, "confirm that every product will be lost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return fmt.Errorf("%w: recreate deletes every product, pass -yes", errUsage)
	}

	if err := a.store.Recreate(ctx); err != nil {
		return err
	}
	a.notifier.Notify(a.provider.Contract().CollectionURI())
	fmt.Fprintln(out, "schema recreated")
	return nil
}

func cmdStatus(ctx context.Context, a *app, out io.Writer, args []string) error {
	if err := newFlagSet("status", out).Parse(args); err != nil {
		return err
	}

	st, err := a.store.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "schema\tv%d\n", st.SchemaVersion)
	fmt.Fprintf(tw, "dirty\t%t\n", st.Dirty)
	fmt.Fprintf(tw, "products\t%d\n", st.Products)
	fmt.Fprintf(tw, "database\t%v\n", st.Health["status"])
	if msg, ok := st.Health["error"]; ok {
		fmt.Fprintf(tw, "database error\t%v\n", msg)
	}
	cache := "disabled"
	if a.redis != nil {
		cache = "healthy"
		if err := a.redis.Ping(ctx).Err(); err != nil {
			cache = "unhealthy: " + err.Error()
		}
	}
	fmt.Fprintf(tw, "cache\t%s\n", cache)
	return tw.Flush()
}
