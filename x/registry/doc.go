/*
Package registry implements a paid instance registry.

Service instances register themselves under a unique identifier, paying a
registration fee into a collector wallet that only this extension controls.
Registrations are rate limited per owner. Registered instances prove
liveness by sending heartbeats and can be deactivated by their owner. The
registry admin controls the registration fee.
*/
package registry
