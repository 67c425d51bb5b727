/*
Package fundmgr implements a custodial fund with whitelisted disbursement.

A single fund account pools deposited tokens. Anyone can deposit. Only the
fund admin can pay tokens out, and only to recipients that are present on
the whitelist with an active entry. The tokens are held on a fund address
that is derived from a condition, so no private key for it exists and only
this extension can authorize outgoing transfers.

The TotalFunds counter of the fund account mirrors the cash balance of the
fund address. Both are updated within the same transaction, so they can
never diverge.
*/
package fundmgr
