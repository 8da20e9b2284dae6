package game

import "testing"

func TestCollisionEffectPhases(t *testing.T) {
	var e CollisionEffect
	if e.Phase != EffectIdle || e.Shake() != 0 || e.Contrast() != 1 {
		t.Fatalf("zero effect should be idle: %+v", e)
	}

	e.Trigger()
	for i := 0; i < EffectPhaseTicks; i++ {
		if e.Phase != EffectActive {
			t.Fatalf("tick %d: phase = %v, want active", i, e.Phase)
		}
		if e.Shake() != EffectShake || e.Contrast() != EffectContrast {
			t.Fatalf("tick %d: shake=%f contrast=%f", i, e.Shake(), e.Contrast())
		}
		e.Advance()
	}
	for i := 0; i < EffectPhaseTicks; i++ {
		if e.Phase != EffectDecaying {
			t.Fatalf("tick %d: phase = %v, want decaying", i, e.Phase)
		}
		if e.Shake() != -EffectShake || e.Contrast() != 1 {
			t.Fatalf("tick %d: shake=%f contrast=%f", i, e.Shake(), e.Contrast())
		}
		e.Advance()
	}
	if e.Phase != EffectIdle {
		t.Fatalf("phase = %v, want idle", e.Phase)
	}
}

func TestCollisionEffectRetriggerRestarts(t *testing.T) {
	var e CollisionEffect
	e.Trigger()
	for range EffectPhaseTicks + 2 {
		e.Advance()
	}
	if e.Phase != EffectDecaying {
		t.Fatalf("phase = %v, want decaying", e.Phase)
	}
	e.Trigger()
	if e.Phase != EffectActive || e.Shake() != EffectShake {
		t.Fatalf("retrigger did not restart: %+v", e)
	}
}
