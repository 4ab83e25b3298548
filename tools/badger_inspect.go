package main

import (
	"chatroom/repositories"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Prints the accounts of the authority user store, read-only.
// Works while the authority is running.
func main() {
	dbPath := flag.String("db", "", "Path to the authority badger DB")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := scanUsers(db)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User ID", "Username", "Roles", "Created"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
	fmt.Printf("%d user(s)\n", len(rows))
}

// scanUsers walks the username keys only; id index entries are skipped by prefix.
func scanUsers(db *badger.DB) ([][]string, error) {
	var rows [][]string
	prefix := []byte("user:")
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user repositories.User
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &user)
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", it.Item().Key(), err)
				continue
			}
			rows = append(rows, []string{
				user.ID,
				user.Username,
				strings.Join(user.Roles, ","),
				user.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return nil
	})
	return rows, err
}
