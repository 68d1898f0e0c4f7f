// Package reconcile compares two keyed snapshots of the same record set and
// reports which target columns changed per key.
//
// The package is pure: it takes materialized datasets as plain values and
// returns structured results or typed errors. It does no I/O and no logging.
//
// # Architecture
//
// The engine is built from small steps that can also be used on their own:
//
// 1. Equal: field equality. Absent and empty values are the same; anything
// else is compared byte for byte.
//
// 2. BuildTable: indexes rows by a key column. Later rows with a repeated key
// replace earlier ones. A key column that never resolves is an error.
//
// 3. Partition: splits the union of both key sets into added, removed and
// matched keys.
//
// 4. DiffRow: compares the target columns of one matched key.
//
// 5. Reconcile: runs the above over a dataset pair and keeps only keys with
// at least one changed column.
//
// # Errors
//
// A key column that never resolves yields a MissingKeyColumnError
// (errors.Is(err, ErrMissingKeyColumn)). A target column absent from either
// dataset yields a MissingColumnError (errors.Is(err, ErrMissingColumn)) and
// aborts the whole run; there is no partial result.
//
// # Usage Example
//
//	res, err := reconcile.Reconcile(previous, current, "id", []string{"name", "age"})
//	if err != nil {
//	    return err
//	}
//	for _, key := range res.ChangedKeys() {
//	    for _, f := range res.Changes[key].Fields {
//	        fmt.Println(key, f.Column, f.Previous.String, "=>", f.Current.String)
//	    }
//	}
package reconcile
