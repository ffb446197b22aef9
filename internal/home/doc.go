// Package home is the composition root of the simulation.
//
// New manufactures the configured devices through the brand factories, wires
// the shared alarm and light group into the security and detection systems,
// and exposes the sensor events (motion, smoke, gas) plus user actions
// (arm, disarm, acknowledge, add device). Every event lands in a bounded
// in-memory history stamped with the local actor.
package home
