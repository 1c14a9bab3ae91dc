/*
Package utils contains decorators that are independent of any extension:
panic recovery, logging, state savepoints and result tagging.
*/
package utils
