/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each package owns at most one configuration record. The record is kept under
the "_c:<package name>" key, encoded with feesplit.MarshalBinary. A
configuration is always validated before it is written, so a stored
configuration is always a valid one.

Configuration can be provided with the genesis file, under the "conf" key:

  {
    "conf": {
      "distributor": {...}
    }
  }
*/
package gconf
